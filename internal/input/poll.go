package input

import (
	"time"

	"github.com/olivier-w/folio/internal/motion"
)

// Sample is one frame of polled pointer state, as read by hosts that
// expose input as state rather than events.
type Sample struct {
	Point  motion.Vec2
	Down   bool // primary button held
	WheelX float64
	WheelY float64
}

// Poller turns successive samples into pointer and wheel events.
type Poller struct {
	prev  Sample
	ready bool
}

// Poll compares s with the previous sample and returns the events that
// happened in between. Wheel deltas are per sample.
func (p *Poller) Poll(s Sample, at time.Time) ([]PointerEvent, *WheelEvent) {
	var ptr []PointerEvent
	prev := p.prev
	if !p.ready {
		prev = Sample{Point: s.Point}
	}
	p.prev, p.ready = s, true

	switch {
	case s.Down && !prev.Down:
		ptr = append(ptr, PointerEvent{Action: PointerDown, Point: s.Point, At: at})
	case s.Down && s.Point != prev.Point:
		ptr = append(ptr, PointerEvent{Action: PointerMove, Point: s.Point, At: at})
	case !s.Down && prev.Down:
		if s.Point != prev.Point {
			ptr = append(ptr, PointerEvent{Action: PointerMove, Point: s.Point, At: at})
		}
		ptr = append(ptr, PointerEvent{Action: PointerUp, Point: s.Point, At: at})
	}

	if s.WheelX == 0 && s.WheelY == 0 {
		return ptr, nil
	}
	return ptr, &WheelEvent{DeltaX: s.WheelX, DeltaY: s.WheelY, At: at}
}

// Reset forgets the previous sample.
func (p *Poller) Reset() {
	*p = Poller{}
}
