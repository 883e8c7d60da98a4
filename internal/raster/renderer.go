package raster

import "strings"

// Renderer converts a canvas into a terminal string.
// It supports two modes:
//   - Color (half-block): uses "▀" with fg/bg colors to pack 2 pixel rows per terminal row.
//   - ASCII (no color): maps each pixel pair to a brightness character.
type Renderer struct {
	mode Mode
	sb   strings.Builder // reusable builder to reduce allocations
}

// NewRenderer creates a renderer using the current terminal's color capabilities.
func NewRenderer() *Renderer {
	return &Renderer{mode: DetectMode()}
}

// NewRendererMode creates a renderer with a fixed color mode.
func NewRendererMode(m Mode) *Renderer {
	return &Renderer{mode: m}
}

// Mode returns the color mode in use.
func (r *Renderer) Mode() Mode { return r.mode }

// Rows returns the terminal rows a canvas of pixel height h occupies.
func Rows(h int) int { return (h + 1) / 2 }

// Render converts c into c.W columns and Rows(c.H) lines. Rendering never
// modifies the canvas.
func (r *Renderer) Render(c *Canvas) string {
	if c == nil || c.W <= 0 || c.H <= 0 || len(c.Pix) < c.W*c.H*3 {
		return ""
	}

	r.sb.Reset()
	// Worst case ~40 bytes per cell (two color escapes) plus newlines.
	r.sb.Grow(c.W * Rows(c.H) * 40)

	if r.mode == ModeOff {
		r.renderASCII(c)
	} else {
		r.renderHalfBlock(c)
	}
	return r.sb.String()
}

// renderHalfBlock uses "▀" (upper half block) with fg = top pixel, bg = bottom pixel.
func (r *Renderer) renderHalfBlock(c *Canvas) {
	rows := Rows(c.H)
	var lastFg, lastBg string

	for row := 0; row < rows; row++ {
		top := row * 2
		for col := 0; col < c.W; col++ {
			// Bottom pixel row may be out of bounds for odd heights.
			bot := Background
			if top+1 < c.H {
				bot = c.At(col, top+1)
			}

			fg := colorSeq(r.mode, c.At(col, top), false)
			bg := colorSeq(r.mode, bot, true)
			if fg != lastFg {
				r.sb.WriteString(fg)
				lastFg = fg
			}
			if bg != lastBg {
				r.sb.WriteString(bg)
				lastBg = bg
			}
			r.sb.WriteString("▀")
		}

		r.sb.WriteString(ansiReset)
		lastFg, lastBg = "", ""
		if row < rows-1 {
			r.sb.WriteByte('\n')
		}
	}
}

// renderASCII averages each vertical pixel pair into one brightness character.
func (r *Renderer) renderASCII(c *Canvas) {
	rows := Rows(c.H)
	for row := 0; row < rows; row++ {
		top := row * 2
		for col := 0; col < c.W; col++ {
			lum := int(luminance(c.At(col, top)))
			if top+1 < c.H {
				lum = (lum + int(luminance(c.At(col, top+1)))) / 2
			}
			r.sb.WriteByte(brightnessChar(uint8(lum)))
		}
		if row < rows-1 {
			r.sb.WriteByte('\n')
		}
	}
}
