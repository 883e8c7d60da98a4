package input

import (
	"math"
	"time"

	"github.com/olivier-w/folio/internal/motion"
)

// WheelConfig tunes wheel handling.
type WheelConfig struct {
	Sensitivity float64 `yaml:"sensitivity"`  // target px per delta unit
	Smoothing   float64 `yaml:"smoothing"`    // low-pass factor, more reactive than drag
	MaxVelocity float64 `yaml:"max_velocity"` // clamp for the instantaneous estimate, px/s
	DecayRate   float64 `yaml:"decay_rate"`   // 1/s
	StopSpeed   float64 `yaml:"stop_speed"`   // px/s
}

// DefaultWheelConfig returns the tuned wheel feel.
func DefaultWheelConfig() WheelConfig {
	return WheelConfig{
		Sensitivity: 1,
		Smoothing:   0.55,
		MaxVelocity: 4000,
		DecayRate:   12,
		StopSpeed:   5,
	}
}

// fallbackInterval stands in for the gap before the first event of a burst.
const fallbackInterval = time.Second / 60

// Wheel tracks how hard the user is scrolling. Its velocity only feeds the
// stretch effect; position moves through the target it nudges.
type Wheel struct {
	cfg       WheelConfig
	velocity  float64
	direction int
	last      time.Time
}

// NewWheel returns a wheel controller at rest.
func NewWheel(cfg WheelConfig) *Wheel {
	return &Wheel{cfg: cfg, direction: 1}
}

// Event applies one wheel notch to target and folds its speed into the
// smoothed velocity. Direction follows the raw delta immediately.
func (w *Wheel) Event(ev WheelEvent, target *float64) {
	if target == nil || ev.DeltaY == 0 || !isFinite(ev.DeltaY) {
		return
	}
	*target += ev.DeltaY * w.cfg.Sensitivity

	interval := fallbackInterval
	if !w.last.IsZero() && ev.At.After(w.last) {
		interval = ev.At.Sub(w.last)
	}
	w.last = ev.At

	inst := ev.DeltaY / interval.Seconds()
	if w.cfg.MaxVelocity > 0 {
		inst = math.Max(-w.cfg.MaxVelocity, math.Min(w.cfg.MaxVelocity, inst))
	}
	w.velocity += (inst - w.velocity) * w.cfg.Smoothing
	if ev.DeltaY > 0 {
		w.direction = 1
	} else {
		w.direction = -1
	}
}

// Decay relaxes the velocity toward zero; it runs every tick whether or not
// new events arrived.
func (w *Wheel) Decay(dt float64) {
	if dt <= 0 || w.velocity == 0 {
		return
	}
	dt = motion.ClampDelta(dt)
	w.velocity *= math.Exp(-w.cfg.DecayRate * dt)
	if math.Abs(w.velocity) < w.cfg.StopSpeed {
		w.velocity = 0
	}
}

// Velocity is the smoothed wheel speed in px/s, signed.
func (w *Wheel) Velocity() float64 { return w.velocity }

// Direction is +1 or -1 for the most recent event.
func (w *Wheel) Direction() int { return w.direction }

// Active reports whether any impulse remains.
func (w *Wheel) Active() bool { return w.velocity != 0 }

// Reset forgets all impulse history.
func (w *Wheel) Reset() {
	w.velocity = 0
	w.direction = 1
	w.last = time.Time{}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
