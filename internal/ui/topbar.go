package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/folio/internal/screen"
	"github.com/olivier-w/folio/internal/util"
	"github.com/olivier-w/folio/internal/view"
)

// topbarRows is the height of the topbar: the tabs and the indicator rule.
const topbarRows = 2

const tabGap = 2

// indicator is the underline that slides to the active tab. It is UI
// chrome and runs on its own spring, outside the views' motion core.
type indicator struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newIndicator() indicator {
	return indicator{spring: harmonica.NewSpring(harmonica.FPS(60), 9.0, 0.8)}
}

// step advances one frame and reports whether the indicator still moves.
func (ind *indicator) step() bool {
	ind.pos, ind.vel = ind.spring.Update(ind.pos, ind.vel, ind.target)
	if math.Abs(ind.pos-ind.target) < 0.05 && math.Abs(ind.vel) < 0.05 {
		ind.pos, ind.vel = ind.target, 0
		return false
	}
	return true
}

func (ind indicator) moving() bool {
	return ind.pos != ind.target || ind.vel != 0
}

type tabSpan struct {
	from, to int // columns, to exclusive
	kind     screen.Kind
}

// tabSpans lays the tabs out from column 2.
func tabSpans() []tabSpan {
	spans := make([]tabSpan, 0, len(screen.All))
	x := 2
	for _, k := range screen.All {
		w := lipgloss.Width(k.Title())
		spans = append(spans, tabSpan{from: x, to: x + w, kind: k})
		x += w + tabGap
	}
	return spans
}

func tabAt(col int) (screen.Kind, bool) {
	for _, s := range tabSpans() {
		if col >= s.from && col < s.to {
			return s.kind, true
		}
	}
	return 0, false
}

func tabStart(k screen.Kind) float64 {
	for _, s := range tabSpans() {
		if s.kind == k {
			return float64(s.from)
		}
	}
	return 0
}

func (m Model) renderTopbar() string {
	var tabs strings.Builder
	tabs.WriteString(spaces(2))
	for i, k := range screen.All {
		if i > 0 {
			tabs.WriteString(spaces(tabGap))
		}
		if k == m.kind {
			tabs.WriteString(activeTabStyle.Render(k.Title()))
		} else {
			tabs.WriteString(tabStyle.Render(k.Title()))
		}
	}

	stats := statStyle.Render(m.stats())
	gap := m.cols() - lipgloss.Width(tabs.String()) - lipgloss.Width(stats) - 2
	line := tabs.String() + spaces(gap) + stats

	pos := int(math.Round(m.indicator.pos))
	w := lipgloss.Width(m.kind.Title())
	rule := spaces(pos) + indicatorStyle.Render(strings.Repeat("▔", w))

	return fit(line, m.cols()) + "\n" + fit(rule, m.cols())
}

func (m Model) stats() string {
	st := m.view.State()
	switch v := m.view.(type) {
	case *view.Grid:
		c := v.Center()
		return fmt.Sprintf("x %s  y %s  %s  cell %d,%d",
			util.FormatOffset(st.Current.X), util.FormatOffset(st.Current.Y),
			util.FormatSpeed(st.Velocity.Len()), c.Col, c.Row)
	case *view.List:
		item := m.gallery.At(v.Selected())
		s := fmt.Sprintf("%s %s  %s", renderSpeedBar(v.Magnitude(), 8),
			util.FormatIndex(v.Selected(), v.Count()), item.Title)
		if m.gallery.IsShuffled() {
			s += "  [shuffle]"
		}
		return s
	}
	return ""
}
