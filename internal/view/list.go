package view

import (
	"math"

	"github.com/olivier-w/folio/internal/driver"
	"github.com/olivier-w/folio/internal/input"
	"github.com/olivier-w/folio/internal/motion"
	"github.com/olivier-w/folio/internal/stretch"
	"github.com/olivier-w/folio/internal/tiling"
)

// Kind selects the list flavour.
type Kind uint8

const (
	KindScroll Kind = iota
	KindPicker
)

func (k Kind) String() string {
	if k == KindPicker {
		return "picker"
	}
	return "scroll"
}

// Uniforms is the per-item input of a shader-style renderer.
type Uniforms struct {
	PositionX float64
	PositionY float64
	Velocity  float64
	Alpha     float64
}

// Item is one visible row with its distortion applied.
type Item struct {
	Slot     int
	Index    int
	Offset   float64 // px from the viewport center line, pull included
	ScaleY   float64
	Opacity  float64
	Uniforms Uniforms
}

// ListFrame is the render input of a list.
type ListFrame struct {
	Base       int
	Fraction   float64
	ItemHeight float64
	Magnitude  float64
	Direction  int
	Viewport   motion.Vec2
	Items      []Item
}

// List is a looping vertical list driven by wheel and drag input. As a
// scroll list its items stretch with speed; as a picker it also pulls edge
// items and snaps to the nearest row once it comes to rest.
type List struct {
	kind     Kind
	cfg      ListConfig
	loop     tiling.Loop
	profile  stretch.Profile
	state    motion.State
	drag     *input.Drag
	wheel    *input.Wheel
	inertia  motion.Inertia
	viewport motion.Vec2
	driver   *driver.Driver
	binding  Binding

	magnitude float64
	direction int
	frame     ListFrame
}

// NewScroll returns the stretching scroll list over count items.
func NewScroll(cfg ListConfig, count int, viewport motion.Vec2, fps int) *List {
	return newList(KindScroll, cfg, count, viewport, fps)
}

// NewPicker returns the snapping picker over count items.
func NewPicker(cfg ListConfig, count int, viewport motion.Vec2, fps int) *List {
	return newList(KindPicker, cfg, count, viewport, fps)
}

func newList(kind Kind, cfg ListConfig, count int, viewport motion.Vec2, fps int) *List {
	l := &List{
		kind:     kind,
		cfg:      cfg,
		loop:     tiling.Loop{ItemHeight: cfg.ItemHeight, Count: count},
		profile:  cfg.Stretch.Profile,
		drag:     input.NewDrag(cfg.Drag),
		wheel:    input.NewWheel(cfg.Wheel),
		inertia:  motion.Inertia{Friction: cfg.Friction, StopSpeed: cfg.StopSpeed},
		viewport: viewport,
	}
	if kind == KindScroll {
		// Edge pull belongs to the picker only.
		l.profile.PullMax = 0
	}
	l.driver = driver.New(kind.String(), l, fps)
	l.Reset()
	return l
}

func (l *List) Name() string { return l.kind.String() }
func (l *List) Kind() Kind { return l.kind }
func (l *List) Driver() *driver.Driver { return l.driver }
func (l *List) State() motion.State { return l.state }
func (l *List) Magnitude() float64 { return l.magnitude }
func (l *List) WheelVelocity() float64 { return l.wheel.Velocity() }
func (l *List) Dragging() bool { return l.drag.Dragging() }
func (l *List) Attach(src Source) { l.binding.Attach(src, l) }
func (l *List) Attached() bool { return l.binding.Attached() }
func (l *List) Count() int { return l.loop.Count }

// Selected is the source index of the row nearest the center line.
func (l *List) Selected() int { return l.loop.Nearest(l.state.Current.Y) }

// Detach stops listening and cancels frames; gesture and wheel history are
// dropped so a later activation starts clean.
func (l *List) Detach() {
	l.binding.Detach()
	l.driver.Stop()
	l.drag.Reset()
	l.wheel.Reset()
	l.state.Velocity = motion.Vec2{}
	l.magnitude = 0
}

// Reset puts item 0 at the center line at rest.
func (l *List) Reset() {
	l.drag.Reset()
	l.wheel.Reset()
	l.state.Reset(motion.Vec2{})
	l.magnitude = 0
	l.direction = 1
	l.layout()
}

// ScrollTo jumps to item index without animation.
func (l *List) ScrollTo(index int) {
	l.ScrollToOffset(float64(index) * l.cfg.ItemHeight)
}

// ScrollToOffset jumps to a scroll position in px without animation.
func (l *List) ScrollToOffset(y float64) {
	l.state.Reset(motion.Vec2{Y: y})
	l.layout()
}

// Fling sets the scroll velocity in px/s.
func (l *List) Fling(v float64) {
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		l.state.Velocity.Y = v
	}
}

func (l *List) Pointer(ev input.PointerEvent) {
	switch ev.Action {
	case input.PointerDown:
		l.drag.Down(ev, &l.state)
	case input.PointerMove:
		l.drag.Move(ev, &l.state, input.AxisScroll)
	case input.PointerUp:
		l.drag.Up(ev, &l.state)
	case input.PointerCancel:
		l.drag.Cancel(ev, &l.state)
	}
}

func (l *List) Wheel(ev input.WheelEvent) {
	if l.drag.Dragging() {
		return
	}
	l.wheel.Event(ev, &l.state.Target.Y)
}

func (l *List) Resize(ev input.ResizeEvent) {
	if ev.Width <= 0 || ev.Height <= 0 {
		return
	}
	l.viewport = motion.Vec2{X: ev.Width, Y: ev.Height}
	l.layout()
}

// Step integrates position, decays the wheel impulse, updates the stretch
// magnitude, then lays out the visible rows. It returns false at rest.
func (l *List) Step(dt float64) bool {
	dragging := l.drag.Dragging()
	l.wheel.Decay(dt)

	rate := l.cfg.Response
	if dragging {
		rate = l.cfg.DragResponse
	} else {
		l.state.Velocity.Y, l.state.Target.Y = l.inertia.Step(l.state.Velocity.Y, l.state.Target.Y, dt)
		if l.cfg.Snap && !l.drag.Pressed() && l.state.Velocity.Y == 0 && !l.wheel.Active() {
			l.state.Target.Y = l.loop.SnapTarget(l.state.Target.Y)
		}
	}
	l.state.Current.Y = motion.Follow(l.state.Current.Y, l.state.Target.Y, rate, dt)

	l.stepMagnitude(dt)

	active := dragging || l.wheel.Active() || l.magnitude > 0 || !l.state.Settled(l.cfg.SettleEpsilon)
	if !active {
		l.state.Snap()
	}
	l.layout()
	return active
}

func (l *List) stepMagnitude(dt float64) {
	sc := l.cfg.Stretch
	speed := math.Max(math.Abs(l.wheel.Velocity()), math.Abs(l.state.Velocity.Y))
	target := stretch.Target(speed, l.cfg.Wheel.MaxVelocity, sc.Exponent)

	rate := sc.ResponseMin
	if target > l.magnitude {
		rate = sc.ResponseMax
	}
	l.magnitude = motion.Follow(l.magnitude, target, rate, dt)
	if target == 0 && l.magnitude < sc.Epsilon {
		l.magnitude = 0
	}

	switch {
	case l.wheel.Active():
		l.direction = l.wheel.Direction()
	case l.state.Velocity.Y > 0:
		l.direction = 1
	case l.state.Velocity.Y < 0:
		l.direction = -1
	}
}

func (l *List) radius() int {
	if l.cfg.Radius > 0 {
		return l.cfg.Radius
	}
	if l.cfg.ItemHeight <= 0 {
		return 0
	}
	return int(math.Ceil(l.viewport.Y/2/l.cfg.ItemHeight)) + 1
}

func (l *List) layout() {
	base, fraction := tiling.Decompose(l.state.Current.Y, l.cfg.ItemHeight)
	slots := l.loop.Slots(l.state.Current.Y, l.radius())

	items := make([]Item, 0, len(slots))
	velocity := l.magnitude * float64(l.direction)
	for _, s := range slots {
		p := l.profile.At(s.Slot, fraction, l.cfg.ItemHeight, l.magnitude, l.direction)
		offset := s.Offset + p.Offset
		items = append(items, Item{
			Slot:    s.Slot,
			Index:   s.Index,
			Offset:  offset,
			ScaleY:  p.ScaleY,
			Opacity: p.Opacity,
			Uniforms: Uniforms{
				PositionX: l.viewport.X / 2,
				PositionY: l.viewport.Y/2 + offset,
				Velocity:  velocity,
				Alpha:     p.Opacity,
			},
		})
	}
	l.frame = ListFrame{
		Base:       base,
		Fraction:   fraction,
		ItemHeight: l.cfg.ItemHeight,
		Magnitude:  l.magnitude,
		Direction:  l.direction,
		Viewport:   l.viewport,
		Items:      items,
	}
}

// Frame returns the layout computed by the latest Step. It does not change
// any state.
func (l *List) Frame() ListFrame { return l.frame }
