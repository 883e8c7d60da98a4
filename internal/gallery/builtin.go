package gallery

import (
	"path/filepath"
	"strings"
	"unicode"
)

var builtin = []Item{
	{Title: "Northwind", Subtitle: "Brand identity"},
	{Title: "Lumen Type", Subtitle: "Variable typeface"},
	{Title: "Harbor", Subtitle: "Editorial site"},
	{Title: "Fieldnotes", Subtitle: "Publication design"},
	{Title: "Atlas", Subtitle: "Mapping interface"},
	{Title: "Sable & Co.", Subtitle: "Packaging"},
	{Title: "Tidal", Subtitle: "Motion system"},
	{Title: "Orbit", Subtitle: "Product launch"},
	{Title: "Kiln", Subtitle: "Ceramics studio"},
	{Title: "Meridian", Subtitle: "Wayfinding"},
	{Title: "Paper Moon", Subtitle: "Exhibition"},
	{Title: "Quarry", Subtitle: "Annual report"},
}

// Default returns the built-in project list with placeholder imagery.
func Default() *Gallery {
	items := make([]Item, len(builtin))
	copy(items, builtin)
	return New(items)
}

// titleFromPath turns "01_night-market.jpg" into "Night Market".
func titleFromPath(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.TrimLeftFunc(name, func(r rune) bool {
		return unicode.IsDigit(r) || r == '_' || r == '-' || r == ' '
	})
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	if len(words) == 0 {
		return filepath.Base(path)
	}
	return strings.Join(words, " ")
}
