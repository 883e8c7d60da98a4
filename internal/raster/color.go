package raster

import "math"

// RGB is an opaque 24-bit color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Background is the canvas clear color.
var Background = RGB{R: 14, G: 14, B: 16}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp mixes a toward b by t in [0, 1].
func Lerp(a, b RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// HSV converts a hue in turns plus saturation and value to RGB.
func HSV(h, s, v float64) RGB {
	h = math.Mod(h, 1)
	if h < 0 {
		h += 1
	}
	s = clamp01(s)
	v = clamp01(v)

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)}
}

// Placeholder is the stand-in color of image index i in a pool of n,
// spread evenly around the hue wheel.
func Placeholder(i, n int) RGB {
	if n <= 0 {
		n = 1
	}
	return HSV(float64(i)/float64(n), 0.45, 0.78)
}
