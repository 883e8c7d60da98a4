// Package driver runs a view's step function once per frame while it is in
// motion and stops itself once the view reports rest.
package driver

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Stepper advances a simulation by dt seconds. It returns false once
// everything has settled and no more frames are needed.
type Stepper interface {
	Step(dt float64) bool
}

// StepFunc adapts a plain function to Stepper.
type StepFunc func(dt float64) bool

func (f StepFunc) Step(dt float64) bool { return f(dt) }

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// generations is shared by all drivers so a frame scheduled by a discarded
// driver can never match a newer one that happens to reuse its ID.
var generations atomic.Uint64

// Driver is a start/stop scheduler around a Stepper. Every Start opens a
// new generation; frames carrying an older generation are ignored, so a
// stop followed by a start never runs two loops at once.
type Driver struct {
	id       string
	stepper  Stepper
	interval time.Duration

	running bool
	gen     uint64
	last    time.Time
	frames  uint64
}

// New returns a stopped driver for s ticking at fps frames per second.
func New(id string, s Stepper, fps int) *Driver {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Driver{
		id:       id,
		stepper:  s,
		interval: time.Second / time.Duration(fps),
	}
}

// ID identifies the driver's frames.
func (d *Driver) ID() string { return d.id }

// Running reports whether frames are being scheduled.
func (d *Driver) Running() bool { return d.running }

// Frames counts steps taken since creation.
func (d *Driver) Frames() uint64 { return d.frames }

// Interval is the nominal time between frames.
func (d *Driver) Interval() time.Duration { return d.interval }

// Start begins a new loop at now. It returns false, and does nothing, if a
// loop is already running.
func (d *Driver) Start(now time.Time) bool {
	if d.running {
		return false
	}
	d.running = true
	d.gen = generations.Add(1)
	d.last = now
	slog.Debug("Driver started", "driver", d.id, "gen", d.gen)
	return true
}

// Stop cancels the loop. Stopping a stopped driver is a no-op.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	d.gen = generations.Add(1)
	slog.Debug("Driver stopped", "driver", d.id, "frames", d.frames)
}

// Advance steps the simulation by the time since the previous frame and
// reports whether another frame is needed.
func (d *Driver) Advance(now time.Time) bool {
	if !d.running {
		return false
	}
	dt := now.Sub(d.last).Seconds()
	if dt < 0 {
		dt = 0
	}
	d.last = now
	d.frames++
	if d.stepper.Step(dt) {
		return true
	}
	d.Stop()
	return false
}
