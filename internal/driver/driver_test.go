package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type countdown struct {
	left int
	dts  []float64
}

func (c *countdown) Step(dt float64) bool {
	c.dts = append(c.dts, dt)
	c.left--
	return c.left > 0
}

func TestDriverStopsItselfAtRest(t *testing.T) {
	c := &countdown{left: 3}
	d := New("grid", c, 60)

	require.True(t, d.Start(epoch))
	now := epoch
	for d.Running() {
		now = now.Add(d.Interval())
		d.Advance(now)
	}
	assert.Equal(t, uint64(3), d.Frames())
	assert.InDelta(t, 1.0/60, c.dts[1], 1e-9)
}

func TestDriverStartIsIdempotent(t *testing.T) {
	d := New("grid", StepFunc(func(float64) bool { return true }), 60)
	assert.True(t, d.Start(epoch))
	assert.False(t, d.Start(epoch.Add(time.Second)))
	assert.Nil(t, d.StartCmd(epoch))
	d.Stop()
	assert.NotNil(t, d.StartCmd(epoch))
}

func TestDriverStopIsIdempotent(t *testing.T) {
	d := New("grid", StepFunc(func(float64) bool { return true }), 0)
	d.Stop()
	assert.False(t, d.Running())
	d.Start(epoch)
	d.Stop()
	d.Stop()
	assert.False(t, d.Running())
	assert.False(t, d.Advance(epoch.Add(time.Second)))
	assert.Equal(t, uint64(0), d.Frames())
}

func TestHandleFrameDropsStaleGenerations(t *testing.T) {
	steps := 0
	d := New("scroll", StepFunc(func(float64) bool { steps++; return true }), 60)

	d.Start(epoch)
	stale := FrameMsg{ID: "scroll", Gen: d.gen, At: epoch.Add(time.Millisecond)}
	d.Stop()
	d.Start(epoch)

	assert.Nil(t, d.HandleFrame(stale))
	assert.Nil(t, d.HandleFrame(FrameMsg{ID: "grid", Gen: d.gen, At: epoch}))
	assert.Equal(t, 0, steps)

	cmd := d.HandleFrame(FrameMsg{ID: "scroll", Gen: d.gen, At: epoch.Add(16 * time.Millisecond)})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, steps)
}

func TestAdvanceClampsBackwardsTime(t *testing.T) {
	c := &countdown{left: 5}
	d := New("picker", c, 60)
	d.Start(epoch)
	d.Advance(epoch.Add(-time.Second))
	assert.Equal(t, []float64{0}, c.dts)
}

func TestFramesDoNotLeakAcrossDriversWithSameID(t *testing.T) {
	oldSteps, newSteps := 0, 0
	old := New("grid", StepFunc(func(float64) bool { oldSteps++; return true }), 60)
	old.Start(epoch)
	pending := FrameMsg{ID: old.ID(), Gen: old.gen, At: epoch.Add(16 * time.Millisecond)}
	old.Stop()

	fresh := New("grid", StepFunc(func(float64) bool { newSteps++; return true }), 60)
	fresh.Start(epoch)

	assert.True(t, fresh.Owns(pending))
	assert.Nil(t, fresh.HandleFrame(pending))
	assert.Equal(t, 0, oldSteps+newSteps)
}
