// Package input turns raw pointer and wheel events into motion targets and
// velocity estimates.
package input

import (
	"time"

	"github.com/olivier-w/folio/internal/motion"
)

// PointerAction distinguishes the phases of a pointer gesture.
type PointerAction uint8

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "cancel"
	}
}

// PointerEvent is a host-independent pointer sample in viewport pixels.
type PointerEvent struct {
	Action PointerAction
	ID     int
	Point  motion.Vec2
	At     time.Time
}

// WheelEvent is one wheel or trackpad notch. DeltaX is carried for
// completeness; the views only scroll vertically.
type WheelEvent struct {
	DeltaX float64
	DeltaY float64
	At     time.Time
}

// ResizeEvent reports a new viewport size in pixels.
type ResizeEvent struct {
	Width  float64
	Height float64
}
