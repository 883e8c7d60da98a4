// Package stretch computes the per-item distortion applied to list items
// while they are moving: center items stretch, edge items compress and dim.
package stretch

import "math"

const (
	// minSigma keeps the Gaussian from collapsing into a division by zero.
	minSigma = 0.35
	// weightPower sharpens the Gaussian so the effect concentrates at center.
	weightPower = 1.8

	baseOpacity = 0.55
)

// Profile tunes the distortion. Pull fields are zero for plain scroll lists
// and set for the picker's rubber-band edge pull.
type Profile struct {
	Sigma      float64 `yaml:"sigma"`
	MaxStretch float64 `yaml:"max_stretch"`
	MaxShrink  float64 `yaml:"max_shrink"`
	MinScale   float64 `yaml:"min_scale"`

	PullMax      float64 `yaml:"pull_max"`
	PullPower    float64 `yaml:"pull_power"`
	AheadFactor  float64 `yaml:"ahead_factor"`
	BehindFactor float64 `yaml:"behind_factor"`
}

// DefaultScroll is the profile of the stretching scroll list.
func DefaultScroll() Profile {
	return Profile{
		Sigma:      1.1,
		MaxStretch: 0.9,
		MaxShrink:  0.35,
		MinScale:   0.4,
	}
}

// DefaultPicker is the picker profile, with edge pull enabled.
func DefaultPicker() Profile {
	return Profile{
		Sigma:        0.9,
		MaxStretch:   0.55,
		MaxShrink:    0.45,
		MinScale:     0.35,
		PullMax:      0.22,
		PullPower:    1.35,
		AheadFactor:  1.0,
		BehindFactor: 0.45,
	}
}

// Params are the render parameters for one item.
type Params struct {
	ScaleY  float64
	Opacity float64
	Offset  float64 // extra px displacement along the list axis
}

// Rest is the undistorted item.
var Rest = Params{ScaleY: 1, Opacity: 1}

// Weight is the sharpened Gaussian center weight in [0, 1] of the item at
// slot, given the scroll remainder fraction.
func (p Profile) Weight(slot int, fraction, itemHeight float64) float64 {
	if itemHeight <= 0 {
		return 1
	}
	sigma := math.Max(minSigma, p.Sigma)
	x := ((float64(slot)*itemHeight - fraction) / itemHeight) / sigma
	w := math.Pow(math.Exp(-(x*x)/2), weightPower)
	if math.IsNaN(w) {
		return 0
	}
	return w
}

// At returns the parameters for the item at slot. magnitude is clamped to
// [0, 1]; direction is the sign of the current scroll movement. The result
// depends only on the arguments.
func (p Profile) At(slot int, fraction, itemHeight, magnitude float64, direction int) Params {
	if itemHeight <= 0 || math.IsNaN(fraction) || math.IsNaN(magnitude) {
		return Rest
	}
	m := math.Max(0, math.Min(1, magnitude))
	w := p.Weight(slot, fraction, itemHeight)

	scale := 1 + m*w*p.MaxStretch - m*(1-w)*p.MaxShrink
	scale = math.Min(math.Max(scale, p.MinScale), 1+math.Max(0, p.MaxStretch))

	params := Params{
		ScaleY:  scale,
		Opacity: math.Min(1, baseOpacity+(1-baseOpacity)*w),
	}
	if p.PullMax > 0 && slot != 0 {
		factor := p.BehindFactor
		if sign(slot) == direction {
			factor = p.AheadFactor
		}
		params.Offset = -float64(slot) * itemHeight * m * p.PullMax * math.Pow(1-w, p.PullPower) * factor
	}
	return params
}

// Target maps a speed in px/s to a stretch magnitude in [0, 1]. exponent
// shapes the response curve; the tuned values are 0.6 for the scroll list
// and 0.62 for the picker.
func Target(speed, maxSpeed, exponent float64) float64 {
	if maxSpeed <= 0 || math.IsNaN(speed) {
		return 0
	}
	n := math.Min(1, math.Abs(speed)/maxSpeed)
	if n == 0 {
		return 0
	}
	return math.Pow(n, exponent)
}

func sign(i int) int {
	if i < 0 {
		return -1
	}
	return 1
}
