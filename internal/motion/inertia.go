package motion

import "math"

// Inertia decays a release velocity with exponential friction and carries
// the target along with it.
type Inertia struct {
	Friction  float64 // 1/s
	StopSpeed float64 // px/s; below this the velocity snaps to exactly zero
}

// Step decays velocity by exp(-Friction*dt), snaps it to zero under
// StopSpeed, then advances target by the decayed velocity.
func (in Inertia) Step(velocity, target, dt float64) (float64, float64) {
	if dt <= 0 || !finite(dt) || !finite(velocity) || !finite(target) {
		return velocity, target
	}
	dt = ClampDelta(dt)
	velocity *= in.decay(dt)
	if math.Abs(velocity) < in.StopSpeed {
		velocity = 0
	}
	return velocity, target + velocity*dt
}

// Step2 is Step for a 2D velocity. The stop test uses the vector magnitude
// so both axes come to rest on the same frame.
func (in Inertia) Step2(velocity, target Vec2, dt float64) (Vec2, Vec2) {
	if dt <= 0 || !finite(dt) || !velocity.Finite() || !target.Finite() {
		return velocity, target
	}
	dt = ClampDelta(dt)
	velocity = velocity.Scale(in.decay(dt))
	if velocity.Len() < in.StopSpeed {
		velocity = Vec2{}
	}
	return velocity, target.Add(velocity.Scale(dt))
}

func (in Inertia) decay(dt float64) float64 {
	if in.Friction <= 0 {
		return 1
	}
	return math.Exp(-in.Friction * dt)
}
