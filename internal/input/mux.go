package input

// Target receives routed input.
type Target interface {
	Pointer(PointerEvent)
	Wheel(WheelEvent)
	Resize(ResizeEvent)
}

// Mux fans host input out to at most one subscribed target: the active
// view. Hosts dispatch into it; views attach and detach.
type Mux struct {
	target Target
	seq    uint64
}

// Subscribe routes events to t until the returned function is called.
// Subscribing again replaces the previous target; the stale unsubscribe
// then does nothing.
func (m *Mux) Subscribe(t Target) func() {
	m.seq++
	seq := m.seq
	m.target = t
	return func() {
		if m.seq == seq {
			m.target = nil
		}
	}
}

// Attached reports whether a target is subscribed.
func (m *Mux) Attached() bool { return m.target != nil }

func (m *Mux) DispatchPointer(ev PointerEvent) {
	if m.target != nil {
		m.target.Pointer(ev)
	}
}

func (m *Mux) DispatchWheel(ev WheelEvent) {
	if m.target != nil {
		m.target.Wheel(ev)
	}
}

func (m *Mux) DispatchResize(ev ResizeEvent) {
	if m.target != nil {
		m.target.Resize(ev)
	}
}
