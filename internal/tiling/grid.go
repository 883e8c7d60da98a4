// Package tiling maps an unbounded scroll or camera offset onto a small,
// deterministic set of visible cells and list slots.
package tiling

import (
	"math"

	"github.com/olivier-w/folio/internal/motion"
)

// Wrap maps any integer into [0, n). n < 1 yields 0.
func Wrap(i, n int) int {
	if n < 1 {
		return 0
	}
	return ((i % n) + n) % n
}

// Cell addresses one tile of the infinite grid.
type Cell struct {
	Col int
	Row int
}

// Tile is a visible cell with its world position (top-left, px) and the
// index of the image backing it.
type Tile struct {
	Cell
	X     float64
	Y     float64
	Image int
}

// Grid describes an infinite square-celled layout backed by a finite pool
// of Images. Radius cells are kept on each side of the center cell.
type Grid struct {
	CellSize float64
	Radius   int
	Images   int
}

// Center returns the cell under the middle of the viewport for a camera
// offset (the translation applied to the world).
func (g Grid) Center(offset, viewport motion.Vec2) Cell {
	if g.CellSize <= 0 || !offset.Finite() {
		return Cell{}
	}
	return Cell{
		Col: int(math.Floor((-offset.X + viewport.X/2) / g.CellSize)),
		Row: int(math.Floor((-offset.Y + viewport.Y/2) / g.CellSize)),
	}
}

// ImageIndex deterministically assigns a pool image to a cell. Summing the
// wrapped row and column staggers neighbouring rows so repeats are not
// stacked directly above each other.
func (g Grid) ImageIndex(c Cell) int {
	n := g.Images
	if n < 1 {
		return 0
	}
	return (Wrap(c.Row, n) + Wrap(c.Col, n)) % n
}

// Visible lists every tile within Radius of center, rows ascending then
// columns ascending. The result depends only on center.
func (g Grid) Visible(center Cell) []Tile {
	r := max(g.Radius, 0)
	side := 2*r + 1
	tiles := make([]Tile, 0, side*side)
	for row := center.Row - r; row <= center.Row+r; row++ {
		for col := center.Col - r; col <= center.Col+r; col++ {
			c := Cell{Col: col, Row: row}
			tiles = append(tiles, Tile{
				Cell:  c,
				X:     float64(col) * g.CellSize,
				Y:     float64(row) * g.CellSize,
				Image: g.ImageIndex(c),
			})
		}
	}
	return tiles
}

// GridTracker caches the visible set and rebuilds it only when the center
// cell moves, so smooth motion inside a cell costs nothing.
type GridTracker struct {
	grid   Grid
	center Cell
	tiles  []Tile
	valid  bool
}

// NewGridTracker returns an empty tracker for g.
func NewGridTracker(g Grid) *GridTracker {
	return &GridTracker{grid: g}
}

// Update returns the visible tiles for offset and whether they were
// rebuilt on this call.
func (t *GridTracker) Update(offset, viewport motion.Vec2) ([]Tile, bool) {
	c := t.grid.Center(offset, viewport)
	if t.valid && c == t.center {
		return t.tiles, false
	}
	t.center = c
	t.tiles = t.grid.Visible(c)
	t.valid = true
	return t.tiles, true
}

// Center is the cell the cached set was built around.
func (t *GridTracker) Center() Cell { return t.center }

// Tiles returns the cached visible set.
func (t *GridTracker) Tiles() []Tile { return t.tiles }

// Invalidate forces the next Update to rebuild, e.g. after a resize.
func (t *GridTracker) Invalidate() { t.valid = false }
