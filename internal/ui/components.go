package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderSpeedBar draws a small meter for a value in [0, 1].
func renderSpeedBar(ratio float64, width int) string {
	if width < 4 {
		width = 4
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*float64(width) + 0.5)
	return strings.Repeat("━", filled) + strings.Repeat("─", width-filled)
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}

// fit truncates or pads s to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = lipgloss.NewStyle().MaxWidth(w).Render(s)
	return s + spaces(w-lipgloss.Width(s))
}
