// Package motion holds the frame-rate independent smoothing and inertia
// primitives shared by every animated view.
package motion

import "math"

// MaxFrameDelta caps a single step so a backgrounded tab or a stalled
// terminal does not produce one huge jump when frames resume.
const MaxFrameDelta = 0.05

// ClampDelta limits dt to MaxFrameDelta. Non-positive values pass through
// unchanged; callers treat them as a no-op.
func ClampDelta(dt float64) float64 {
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}

// Follow eases current toward target at rate (1/s) over dt seconds using
// exponential smoothing. The result never overshoots target.
//
// dt <= 0, rate <= 0 or any non-finite argument returns current unchanged,
// so a bad sample can never poison the state with NaN.
func Follow(current, target, rate, dt float64) float64 {
	if dt <= 0 || rate <= 0 || !finite(current) || !finite(target) || !finite(rate) || !finite(dt) {
		return current
	}
	dt = ClampDelta(dt)
	return current + (target-current)*(1-math.Exp(-rate*dt))
}

// Follow2 applies Follow to each axis independently.
func Follow2(current, target Vec2, rate, dt float64) Vec2 {
	return Vec2{
		X: Follow(current.X, target.X, rate, dt),
		Y: Follow(current.Y, target.Y, rate, dt),
	}
}
