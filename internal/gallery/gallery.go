// Package gallery holds the finite pool of projects that the infinite
// layouts cycle through.
package gallery

import (
	"math/rand"

	"github.com/olivier-w/folio/internal/media"
	"github.com/olivier-w/folio/internal/tiling"
)

// Item is one project in the pool.
type Item struct {
	Title    string
	Subtitle string
	Path     string // image file; empty means a procedural placeholder
}

// HasImage reports whether the item is backed by an image file.
func (it Item) HasImage() bool { return it.Path != "" }

// Gallery is an ordered pool of items. Indices wrap, so any integer is a
// valid position. It is only mutated from the host's update loop.
type Gallery struct {
	items    []Item
	order    []int // maps position to item index
	shuffled bool
}

// New creates a gallery from items.
func New(items []Item) *Gallery {
	g := &Gallery{items: items}
	g.resetOrder()
	return g
}

func (g *Gallery) resetOrder() {
	g.order = make([]int, len(g.items))
	for i := range g.order {
		g.order[i] = i
	}
}

// Len returns the pool size.
func (g *Gallery) Len() int { return len(g.items) }

// At returns the item at position i, wrapped into the pool. The zero Item
// is returned for an empty pool.
func (g *Gallery) At(i int) Item {
	if len(g.items) == 0 {
		return Item{}
	}
	return g.items[g.order[tiling.Wrap(i, len(g.items))]]
}

// Items returns the items in display order.
func (g *Gallery) Items() []Item {
	out := make([]Item, len(g.order))
	for pos, idx := range g.order {
		out[pos] = g.items[idx]
	}
	return out
}

// Images returns how many items are backed by image files.
func (g *Gallery) Images() int {
	n := 0
	for _, it := range g.items {
		if it.HasImage() {
			n++
		}
	}
	return n
}

// IsShuffled returns whether a shuffled order is active.
func (g *Gallery) IsShuffled() bool { return g.shuffled }

// Shuffle randomizes the display order with a Fisher-Yates shuffle. The
// item at position 0 stays in place so the view under the cursor holds.
func (g *Gallery) Shuffle(rng *rand.Rand) {
	n := len(g.order)
	if n <= 2 {
		return
	}
	g.shuffled = true
	for i := n - 1; i > 1; i-- {
		j := 1 + rng.Intn(i)
		g.order[i], g.order[j] = g.order[j], g.order[i]
	}
}

// Unshuffle restores the original order.
func (g *Gallery) Unshuffle() {
	g.shuffled = false
	g.resetOrder()
}

// FromLibrary pairs scanned images with manifest projects. The pool is as
// long as the longer of the two; the shorter side repeats. Images without
// a project are titled by file name.
func FromLibrary(lib media.Library) *Gallery {
	n := max(len(lib.Images), len(lib.Projects))
	if n == 0 {
		return Default()
	}
	items := make([]Item, n)
	for i := range items {
		if len(lib.Projects) > 0 {
			p := lib.Projects[i%len(lib.Projects)]
			items[i].Title, items[i].Subtitle = p.Title, p.Subtitle
		}
		if len(lib.Images) > 0 {
			items[i].Path = lib.Images[i%len(lib.Images)]
			if items[i].Title == "" {
				items[i].Title = titleFromPath(items[i].Path)
			}
		}
	}
	return New(items)
}
