package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/folio/internal/input"
	"github.com/olivier-w/folio/internal/motion"
)

const pointerID = 1

// mouseState turns terminal mouse reports into pointer gestures. It lives
// behind a pointer so copies of the model share one gesture.
type mouseState struct {
	down bool
}

func (s *mouseState) reset() { s.down = false }

// translate returns the pointer event for msg, if it is part of a left
// button gesture. Terminals report releases without a button, so any
// release ends the gesture.
func (s *mouseState) translate(msg tea.MouseMsg, p motion.Vec2, at time.Time) (input.PointerEvent, bool) {
	ev := input.PointerEvent{ID: pointerID, Point: p, At: at}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		s.down = true
		ev.Action = input.PointerDown
	case tea.MouseActionMotion:
		if !s.down {
			return ev, false
		}
		ev.Action = input.PointerMove
	case tea.MouseActionRelease:
		if !s.down {
			return ev, false
		}
		s.down = false
		ev.Action = input.PointerUp
	default:
		return ev, false
	}
	return ev, true
}

// pixel maps a terminal cell to the center of its box in view pixels.
func (m Model) pixel(x, y int) motion.Vec2 {
	t := m.cfg.Terminal
	return motion.Vec2{
		X: (float64(x) + 0.5) * t.CellWidth,
		Y: (float64(y-topbarRows) + 0.5) * t.CellHeight,
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	step := m.cfg.Terminal.WheelStep
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m, m.wheel(-step)
	case tea.MouseButtonWheelDown:
		return m, m.wheel(step)
	case tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return m, nil
	}

	if msg.Y < topbarRows && !m.mouse.down {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if k, ok := tabAt(msg.X); ok && k != m.kind {
				return m, m.switchTo(k)
			}
		}
		return m, nil
	}

	now := m.now()
	ev, ok := m.mouse.translate(msg, m.pixel(msg.X, msg.Y), now)
	if !ok {
		return m, nil
	}
	m.mux.DispatchPointer(ev)
	return m, m.view.Driver().StartCmd(now)
}
