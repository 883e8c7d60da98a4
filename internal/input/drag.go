package input

import (
	"time"

	"github.com/olivier-w/folio/internal/motion"
)

// DragConfig tunes the pointer drag state machine.
type DragConfig struct {
	Threshold float64 `yaml:"threshold"` // px before a press becomes a drag
	Smoothing float64 `yaml:"smoothing"` // low-pass factor for the velocity estimate
	Boost     float64 `yaml:"boost"`     // velocity multiplier applied on release
}

// DefaultDragConfig returns the tuned drag feel.
func DefaultDragConfig() DragConfig {
	return DragConfig{
		Threshold: 4,
		Smoothing: 0.18,
		Boost:     1.3,
	}
}

// DragPhase is the state of the drag state machine.
type DragPhase uint8

const (
	DragIdle DragPhase = iota
	DragPending
	DragActive
)

func (p DragPhase) String() string {
	switch p {
	case DragPending:
		return "pending"
	case DragActive:
		return "dragging"
	default:
		return "idle"
	}
}

type dragSession struct {
	pointer    int
	start      motion.Vec2
	origin     motion.Vec2
	lastPoint  motion.Vec2
	lastSample time.Time
}

// Drag converts a press-move-release sequence into target updates on a
// motion.State. A press that never travels Threshold pixels is a click and
// leaves the state untouched.
type Drag struct {
	cfg     DragConfig
	phase   DragPhase
	session dragSession
}

// NewDrag returns an idle drag controller.
func NewDrag(cfg DragConfig) *Drag {
	return &Drag{cfg: cfg}
}

func (d *Drag) Phase() DragPhase { return d.phase }

// Dragging reports whether the threshold has been crossed in the current
// session.
func (d *Drag) Dragging() bool { return d.phase == DragActive }

// Pressed reports whether a session is open, armed or not.
func (d *Drag) Pressed() bool { return d.phase != DragIdle }

// Down opens a session at ev.Point and kills any running inertia.
func (d *Drag) Down(ev PointerEvent, s *motion.State) {
	d.phase = DragPending
	d.session = dragSession{
		pointer:    ev.ID,
		start:      ev.Point,
		origin:     s.Target,
		lastPoint:  ev.Point,
		lastSample: ev.At,
	}
	s.Velocity = motion.Vec2{}
}

// Move updates the target and the velocity estimate. It returns true when
// the target changed.
func (d *Drag) Move(ev PointerEvent, s *motion.State, mask motion.Vec2) bool {
	if d.phase == DragIdle || ev.ID != d.session.pointer || !ev.Point.Finite() {
		return false
	}
	if d.phase == DragPending {
		if ev.Point.Dist(d.session.start) < d.cfg.Threshold {
			return false
		}
		d.phase = DragActive
		// Pick up from wherever the previous fling currently is.
		d.session.origin = s.Current
	}

	delta := ev.Point.Sub(d.session.start)
	s.Target = d.session.origin.Add(mul(delta, mask))

	dt := ev.At.Sub(d.session.lastSample).Seconds()
	if dt > 0 {
		inst := mul(ev.Point.Sub(d.session.lastPoint), mask).Scale(1 / dt)
		s.Velocity = s.Velocity.Add(inst.Sub(s.Velocity).Scale(d.cfg.Smoothing))
		d.session.lastSample = ev.At
	}
	d.session.lastPoint = ev.Point
	return true
}

// Up closes the session. A real drag leaves a boosted velocity behind for
// inertia to consume; a click leaves nothing.
func (d *Drag) Up(ev PointerEvent, s *motion.State) {
	if d.phase == DragIdle || ev.ID != d.session.pointer {
		return
	}
	if d.phase == DragActive {
		s.Velocity = s.Velocity.Scale(d.cfg.Boost)
	}
	d.Reset()
}

// Cancel closes the session as Up does.
func (d *Drag) Cancel(ev PointerEvent, s *motion.State) {
	d.Up(ev, s)
}

// Reset drops any open session without touching the motion state.
func (d *Drag) Reset() {
	d.phase = DragIdle
	d.session = dragSession{}
}

// Axis masks passed to Move. AxisScroll inverts Y: pulling the pointer
// down moves a list back toward earlier items.
var (
	AxisBoth   = motion.Vec2{X: 1, Y: 1}
	AxisScroll = motion.Vec2{Y: -1}
)

func mul(a, b motion.Vec2) motion.Vec2 {
	return motion.Vec2{X: a.X * b.X, Y: a.Y * b.Y}
}
