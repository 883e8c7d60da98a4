package motion

import "math"

// Vec2 is a 2D vector in pixels (positions) or pixels per second (velocities).
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }
func (v Vec2) Finite() bool { return finite(v.X) && finite(v.Y) }
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
