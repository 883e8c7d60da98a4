package util

import (
	"fmt"
	"math"
)

// FormatOffset formats a pixel offset compactly: 340, -1.2k, 15k.
func FormatOffset(px float64) string {
	if math.IsNaN(px) || math.IsInf(px, 0) {
		return "?"
	}
	a := math.Abs(px)
	switch {
	case a < 1000:
		return fmt.Sprintf("%.0f", px)
	case a < 10000:
		return fmt.Sprintf("%.1fk", px/1000)
	default:
		return fmt.Sprintf("%.0fk", px/1000)
	}
}

// FormatSpeed formats a speed in px/s.
func FormatSpeed(pxPerSec float64) string {
	return FormatOffset(math.Abs(pxPerSec)) + " px/s"
}

// FormatIndex formats a 0-based position as "n/total", wrapping n into range.
func FormatIndex(i, total int) string {
	if total <= 0 {
		return "0/0"
	}
	i %= total
	if i < 0 {
		i += total
	}
	return fmt.Sprintf("%d/%d", i+1, total)
}
