package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWheelEventAdvancesTargetAndSetsDirection(t *testing.T) {
	cfg := DefaultWheelConfig()
	cfg.Sensitivity = 0.5
	w := NewWheel(cfg)
	target := 0.0

	w.Event(WheelEvent{DeltaY: 500, At: at(0)}, &target)
	assert.Equal(t, 250.0, target)
	assert.Equal(t, 1, w.Direction())
	// First event uses the fallback interval and clamps to MaxVelocity.
	assert.InDelta(t, cfg.MaxVelocity*cfg.Smoothing, w.Velocity(), 1e-9)

	w.Event(WheelEvent{DeltaY: -10, At: at(100)}, &target)
	assert.Equal(t, -1, w.Direction(), "direction follows the raw delta")
	assert.Greater(t, w.Velocity(), 0.0, "magnitude is still smoothing")
}

func TestWheelDecaysToZero(t *testing.T) {
	w := NewWheel(DefaultWheelConfig())
	target := 0.0
	w.Event(WheelEvent{DeltaY: 500, At: at(0)}, &target)

	for range 60 {
		w.Decay(1.0 / 60)
	}
	assert.Equal(t, 0.0, w.Velocity())
	assert.False(t, w.Active())
	assert.Equal(t, 500.0, target)
}

func TestWheelIgnoresDegenerateEvents(t *testing.T) {
	w := NewWheel(DefaultWheelConfig())
	target := 3.0
	w.Event(WheelEvent{DeltaY: 0, At: at(0)}, &target)
	w.Event(WheelEvent{DeltaY: 10, At: at(0)}, nil)
	assert.Equal(t, 3.0, target)
	assert.False(t, w.Active())
}

func TestWheelReset(t *testing.T) {
	w := NewWheel(DefaultWheelConfig())
	target := 0.0
	w.Event(WheelEvent{DeltaY: -80, At: at(0)}, &target)
	w.Reset()
	assert.Equal(t, 0.0, w.Velocity())
	assert.Equal(t, 1, w.Direction())
}
