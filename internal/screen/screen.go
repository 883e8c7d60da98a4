// Package screen names the portfolio screens and builds their views from
// the feel configuration.
package screen

import (
	"fmt"
	"strings"

	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/motion"
	"github.com/olivier-w/folio/internal/view"
)

// Kind is one of the portfolio screens.
type Kind int

const (
	Grid Kind = iota
	Scroll
	Picker
	numKinds
)

// All lists the screens in cycling order.
var All = []Kind{Grid, Scroll, Picker}

func (k Kind) String() string {
	switch k {
	case Scroll:
		return "scroll"
	case Picker:
		return "picker"
	default:
		return "grid"
	}
}

// Title is the human label shown in the screen index.
func (k Kind) Title() string {
	switch k {
	case Scroll:
		return "Index"
	case Picker:
		return "Picker"
	default:
		return "Work"
	}
}

// Description is the one-line hint under the title.
func (k Kind) Description() string {
	switch k {
	case Scroll:
		return "Scroll the project list"
	case Picker:
		return "Spin to pick a project"
	default:
		return "Drag the infinite grid"
	}
}

// Next returns the following screen, wrapping around.
func (k Kind) Next() Kind { return (k + 1) % numKinds }

// Prev returns the preceding screen, wrapping around.
func (k Kind) Prev() Kind { return (k + numKinds - 1) % numKinds }

// Parse maps a name to a screen.
func Parse(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grid":
		return Grid, nil
	case "scroll", "list":
		return Scroll, nil
	case "picker":
		return Picker, nil
	}
	return Grid, fmt.Errorf("unknown screen %q (want grid, scroll or picker)", s)
}

// New builds a fresh view for k over a pool of items.
func New(k Kind, cfg config.Config, pool int, viewport motion.Vec2) view.View {
	fps := cfg.Terminal.FPS
	switch k {
	case Scroll:
		return view.NewScroll(cfg.Scroll, pool, viewport, fps)
	case Picker:
		return view.NewPicker(cfg.Picker, pool, viewport, fps)
	default:
		return view.NewGrid(cfg.Grid, pool, viewport, fps)
	}
}
