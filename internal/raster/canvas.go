package raster

import (
	"image"
	"math"
)

// Canvas is an RGB24 framebuffer, 3 bytes per pixel, row-major.
type Canvas struct {
	W, H int
	Pix  []byte
}

// NewCanvas allocates a w×h canvas cleared to Background.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{W: w, H: h, Pix: make([]byte, w*h*3)}
	c.Clear(Background)
	return c
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col RGB) {
	for i := 0; i+2 < len(c.Pix); i += 3 {
		c.Pix[i], c.Pix[i+1], c.Pix[i+2] = col.R, col.G, col.B
	}
}

// At returns the pixel at (x, y), or black outside the canvas.
func (c *Canvas) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return RGB{}
	}
	off := (y*c.W + x) * 3
	return RGB{c.Pix[off], c.Pix[off+1], c.Pix[off+2]}
}

// Blend mixes col over (x, y) with the given alpha. Off-canvas writes are
// dropped.
func (c *Canvas) Blend(x, y int, col RGB, alpha float64) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H || alpha <= 0 {
		return
	}
	off := (y*c.W + x) * 3
	if alpha < 1 {
		col = Lerp(RGB{c.Pix[off], c.Pix[off+1], c.Pix[off+2]}, col, alpha)
	}
	c.Pix[off], c.Pix[off+1], c.Pix[off+2] = col.R, col.G, col.B
}

// Rect is a float rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) bounds(c *Canvas) (x0, y0, x1, y1 int) {
	x0 = max(int(math.Round(r.X)), 0)
	y0 = max(int(math.Round(r.Y)), 0)
	x1 = min(int(math.Round(r.X+r.W)), c.W)
	y1 = min(int(math.Round(r.Y+r.H)), c.H)
	return
}

// Fill paints r with col at the given alpha.
func (c *Canvas) Fill(r Rect, col RGB, alpha float64) {
	x0, y0, x1, y1 := r.bounds(c)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Blend(x, y, col, alpha)
		}
	}
}

// Draw scales img into r with nearest-neighbor sampling.
func (c *Canvas) Draw(img *image.RGBA, r Rect, alpha float64) {
	if img == nil || r.W <= 0 || r.H <= 0 {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}
	x0, y0, x1, y1 := r.bounds(c)
	for y := y0; y < y1; y++ {
		sy := b.Min.Y + int((float64(y)+0.5-r.Y)*float64(b.Dy())/r.H)
		sy = min(max(sy, b.Min.Y), b.Max.Y-1)
		for x := x0; x < x1; x++ {
			sx := b.Min.X + int((float64(x)+0.5-r.X)*float64(b.Dx())/r.W)
			sx = min(max(sx, b.Min.X), b.Max.X-1)
			p := img.RGBAAt(sx, sy)
			c.Blend(x, y, RGB{p.R, p.G, p.B}, alpha)
		}
	}
}
