// Package snapshot renders a single view frame offscreen with gg, for
// previews and visual checks of the layout outputs.
package snapshot

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/olivier-w/folio/internal/raster"
	"github.com/olivier-w/folio/internal/view"
)

// Options configures a snapshot.
type Options struct {
	Width, Height int
	Gap           float64 // fraction of a cell left empty around each tile
	Radius        float64 // corner radius in px
	Pool          int
	// Source returns the decoded image for an index, or nil for a placeholder.
	Source func(index int) image.Image
}

// Snapshot is an offscreen canvas that view frames are drawn onto.
type Snapshot struct {
	dc   *gg.Context
	opts Options
	bufs map[int]*gg.ImageBuf
}

// New allocates a canvas of opts.Width×opts.Height.
func New(opts Options) (*Snapshot, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid snapshot size %dx%d", opts.Width, opts.Height)
	}
	s := &Snapshot{
		dc:   gg.NewContext(opts.Width, opts.Height),
		opts: opts,
		bufs: make(map[int]*gg.ImageBuf),
	}
	s.clear()
	return s, nil
}

func (s *Snapshot) clear() {
	bg := raster.Background
	s.dc.ClearWithColor(gg.RGB(float64(bg.R)/255, float64(bg.G)/255, float64(bg.B)/255))
}

func (s *Snapshot) buf(index int) *gg.ImageBuf {
	if b, ok := s.bufs[index]; ok {
		return b
	}
	var b *gg.ImageBuf
	if s.opts.Source != nil {
		if img := s.opts.Source(index); img != nil {
			b = gg.ImageBufFromImage(img)
		}
	}
	s.bufs[index] = b
	return b
}

func (s *Snapshot) fillPlaceholder(index int, x, y, w, h, alpha float64) error {
	c := raster.Placeholder(index, s.opts.Pool)
	s.dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, alpha)
	if s.opts.Radius > 0 {
		s.dc.DrawRoundedRectangle(x, y, w, h, s.opts.Radius)
	} else {
		s.dc.DrawRectangle(x, y, w, h)
	}
	return s.dc.Fill()
}

func (s *Snapshot) draw(index int, x, y, w, h, alpha float64) error {
	b := s.buf(index)
	if b == nil {
		return s.fillPlaceholder(index, x, y, w, h, alpha)
	}
	s.dc.DrawImageEx(b, gg.DrawImageOptions{
		X:         x,
		Y:         y,
		DstWidth:  w,
		DstHeight: h,
		Opacity:   alpha,
	})
	return nil
}

// DrawGrid draws every tile of f.
func (s *Snapshot) DrawGrid(f view.GridFrame) error {
	inset := f.CellSize * s.opts.Gap / 2
	size := f.CellSize - 2*inset
	for _, t := range f.Tiles {
		pos := f.Screen(t)
		if err := s.draw(t.Image, pos.X+inset, pos.Y+inset, size, size, 1); err != nil {
			return fmt.Errorf("drawing tile %d,%d: %w", t.Col, t.Row, err)
		}
	}
	slog.Debug("Snapshot grid drawn", "tiles", len(f.Tiles))
	return nil
}

// DrawList draws the items of f as full-width bands with their stretch and
// opacity applied.
func (s *Snapshot) DrawList(f view.ListFrame) error {
	rest := f.ItemHeight * (1 - s.opts.Gap)
	w := f.Viewport.X * 0.6
	x := (f.Viewport.X - w) / 2
	for _, it := range f.Items {
		h := rest * it.ScaleY
		y := it.Uniforms.PositionY - h/2
		if err := s.draw(it.Index, x, y, w, h, it.Opacity); err != nil {
			return fmt.Errorf("drawing item %d: %w", it.Index, err)
		}
	}
	slog.Debug("Snapshot list drawn", "items", len(f.Items), "magnitude", f.Magnitude)
	return nil
}

// Image returns the rendered canvas.
func (s *Snapshot) Image() image.Image {
	_ = s.dc.FlushGPU()
	return s.dc.Image()
}

// SavePNG writes the canvas to path.
func (s *Snapshot) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Close releases the canvas.
func (s *Snapshot) Close() error { return s.dc.Close() }
