package raster

import (
	"image"
	"math"

	"github.com/olivier-w/folio/internal/motion"
	"github.com/olivier-w/folio/internal/view"
)

// Thumbs supplies thumbnails by image index and pixel size. A nil result
// means "not loaded yet" and is drawn as a placeholder.
type Thumbs interface {
	Thumb(index, w, h int) *image.RGBA
}

// Painter draws view frames onto a canvas. Scale converts view pixels to
// canvas pixels.
type Painter struct {
	Scale  motion.Vec2
	Gap    float64 // fraction of a cell left empty around each tile
	Pool   int     // number of distinct images, for placeholder hues
	Thumbs Thumbs  // may be nil
}

func (p Painter) thumb(index int, r Rect) *image.RGBA {
	if p.Thumbs == nil {
		return nil
	}
	w, h := int(math.Round(r.W)), int(math.Round(r.H))
	if w < 1 || h < 1 {
		return nil
	}
	return p.Thumbs.Thumb(index, w, h)
}

func visible(c *Canvas, r Rect) bool {
	return r.X < float64(c.W) && r.Y < float64(c.H) && r.X+r.W > 0 && r.Y+r.H > 0
}

// Grid paints every tile of f.
func (p Painter) Grid(c *Canvas, f view.GridFrame) {
	inset := f.CellSize * p.Gap / 2
	size := f.CellSize - 2*inset
	for _, t := range f.Tiles {
		pos := f.Screen(t)
		r := Rect{
			X: (pos.X + inset) * p.Scale.X,
			Y: (pos.Y + inset) * p.Scale.Y,
			W: size * p.Scale.X,
			H: size * p.Scale.Y,
		}
		if !visible(c, r) {
			continue
		}
		if img := p.thumb(t.Image, r); img != nil {
			c.Draw(img, r, 1)
		} else {
			c.Fill(r, Placeholder(t.Image, p.Pool), 1)
		}
	}
}

// List paints the items of f as horizontal bands spanning x..x+w (view
// pixels), stretched by ScaleY and faded by Opacity.
func (p Painter) List(c *Canvas, f view.ListFrame, x, w float64) {
	rest := f.ItemHeight * (1 - p.Gap)
	for _, it := range f.Items {
		h := rest * it.ScaleY
		r := Rect{
			X: x * p.Scale.X,
			Y: (it.Uniforms.PositionY - h/2) * p.Scale.Y,
			W: w * p.Scale.X,
			H: h * p.Scale.Y,
		}
		if !visible(c, r) {
			continue
		}
		// Thumbnails are cached at rest height; the stretch is applied when drawing.
		size := Rect{W: r.W, H: rest * p.Scale.Y}
		if img := p.thumb(it.Index, size); img != nil {
			c.Draw(img, r, it.Opacity)
		} else {
			c.Fill(r, Placeholder(it.Index, p.Pool), it.Opacity)
		}
	}
}
