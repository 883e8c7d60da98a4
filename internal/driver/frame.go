package driver

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is one scheduled frame for the driver named ID.
type FrameMsg struct {
	ID  string
	Gen uint64
	At  time.Time
}

// StartCmd starts the driver and returns the command for its first frame,
// or nil if it was already running.
func (d *Driver) StartCmd(now time.Time) tea.Cmd {
	if !d.Start(now) {
		return nil
	}
	return d.schedule()
}

// Owns reports whether msg was scheduled by this driver.
func (d *Driver) Owns(msg FrameMsg) bool { return msg.ID == d.id }

// HandleFrame advances one frame and schedules the next while motion
// continues. Frames from a previous generation are dropped.
func (d *Driver) HandleFrame(msg FrameMsg) tea.Cmd {
	if msg.ID != d.id || msg.Gen != d.gen || !d.running {
		return nil
	}
	if d.Advance(msg.At) {
		return d.schedule()
	}
	return nil
}

func (d *Driver) schedule() tea.Cmd {
	id, gen := d.id, d.gen
	return tea.Tick(d.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Gen: gen, At: t}
	})
}
