// Package view holds the animated screens. Each view owns its motion state
// and its driver, is built fresh on activation and thrown away on exit.
package view

import (
	"github.com/olivier-w/folio/internal/driver"
	"github.com/olivier-w/folio/internal/input"
	"github.com/olivier-w/folio/internal/motion"
)

// Source is where a view receives its input from.
type Source interface {
	Subscribe(input.Target) func()
}

// View is what a host needs from any screen.
type View interface {
	input.Target
	driver.Stepper
	Name() string
	State() motion.State
	Driver() *driver.Driver
	Attach(Source)
	Detach()
	Reset()
}

var (
	_ View = (*Grid)(nil)
	_ View = (*List)(nil)
)

// Binding pairs an Attach with exactly one effective Detach.
type Binding struct {
	unsubscribe func()
}

// Attach subscribes t to src, detaching any previous source first.
func (b *Binding) Attach(src Source, t input.Target) {
	b.Detach()
	if src != nil {
		b.unsubscribe = src.Subscribe(t)
	}
}

// Detach unsubscribes. Calling it more than once is safe.
func (b *Binding) Detach() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

// Attached reports whether the binding holds a subscription.
func (b *Binding) Attached() bool { return b.unsubscribe != nil }
