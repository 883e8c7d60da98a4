package main

import (
	"fmt"
	"log/slog"

	"github.com/olivier-w/folio/internal/gallery"
	"github.com/olivier-w/folio/internal/media"
	"github.com/olivier-w/folio/internal/sound"
)

// tickVolume is the playback volume of the picker tick.
const tickVolume = 0.35

type openOptions struct {
	Dir       string
	Sound     bool
	TickSound string // custom WAV; implies Sound
}

type openStatus struct {
	Label   string
	Percent float64
}

type openResult struct {
	Gallery *gallery.Gallery
	Clicker *sound.Clicker
}

// openPortfolio loads everything the shell needs before the first screen:
// the project pool and, if asked for, the tick sound. Audio failures only
// disable sound.
func openPortfolio(opts openOptions, report func(openStatus)) (openResult, error) {
	if report == nil {
		report = func(openStatus) {}
	}

	var res openResult
	report(openStatus{Label: "Scanning projects...", Percent: 0.1})
	g, err := loadGallery(opts.Dir)
	if err != nil {
		return res, err
	}
	res.Gallery = g
	slog.Info("Gallery loaded", "dir", opts.Dir, "items", g.Len(), "images", g.Images())

	if opts.Sound || opts.TickSound != "" {
		report(openStatus{Label: "Opening audio...", Percent: 0.6})
		c, err := sound.New(opts.TickSound, tickVolume)
		if err != nil {
			slog.Warn("Tick sound disabled", "path", opts.TickSound, "error", err)
		}
		res.Clicker = c
	}

	report(openStatus{Label: "Ready", Percent: 1})
	return res, nil
}

// loadGallery scans dir, or returns the built-in projects when dir is empty.
func loadGallery(dir string) (*gallery.Gallery, error) {
	if dir == "" {
		return gallery.Default(), nil
	}
	lib, err := media.Scan(dir)
	if err != nil {
		return nil, fmt.Errorf("loading portfolio: %w", err)
	}
	if len(lib.Images) == 0 && len(lib.Projects) == 0 {
		slog.Warn("No images or projects found, using built-in list", "dir", lib.Dir, "formats", media.SupportedExtsList())
	}
	return gallery.FromLibrary(lib), nil
}
