package motion

// State is the per-view animated position: Current chases Target, Velocity
// seeds inertia after a release. Scalar views use only the Y axis.
type State struct {
	Current  Vec2
	Target   Vec2
	Velocity Vec2
}

// NewState returns a state resting at p.
func NewState(p Vec2) State {
	return State{Current: p, Target: p}
}

// Reset puts the state at rest on p.
func (s *State) Reset(p Vec2) {
	*s = NewState(p)
}

// Error is the remaining distance between Current and Target.
func (s State) Error() float64 {
	return s.Current.Dist(s.Target)
}

// Settled reports whether the state is at rest within epsilon.
func (s State) Settled(epsilon float64) bool {
	return s.Velocity.IsZero() && s.Error() < epsilon
}

// Snap jumps Current onto Target.
func (s *State) Snap() {
	s.Current = s.Target
}
