// Package config loads the feel parameters of every view from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/olivier-w/folio/internal/input"
	"github.com/olivier-w/folio/internal/view"
)

// Terminal maps terminal cells onto the pixel space the views work in.
type Terminal struct {
	CellWidth  float64 `yaml:"cell_width"`  // px per column
	CellHeight float64 `yaml:"cell_height"` // px per row
	WheelStep  float64 `yaml:"wheel_step"`  // px per wheel notch
	FPS        int     `yaml:"fps"`
}

// Config is the full feel configuration.
type Config struct {
	Grid     view.GridConfig `yaml:"grid"`
	Scroll   view.ListConfig `yaml:"scroll"`
	Picker   view.ListConfig `yaml:"picker"`
	Terminal Terminal        `yaml:"terminal"`
}

// Default returns the tuned defaults.
func Default() Config {
	return Config{
		Grid:   view.DefaultGridConfig(),
		Scroll: view.DefaultScrollConfig(),
		Picker: view.DefaultPickerConfig(),
		Terminal: Terminal{
			CellWidth:  8,
			CellHeight: 16,
			WheelStep:  48,
			FPS:        60,
		},
	}
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses path. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports every out-of-range parameter at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	g := c.Grid
	check(g.CellSize > 0, "grid.cell_size must be positive, got %v", g.CellSize)
	check(g.Radius >= 0, "grid.radius must not be negative, got %d", g.Radius)
	check(g.DragResponse > 0, "grid.drag_response must be positive, got %v", g.DragResponse)
	check(g.InertiaResponse > 0, "grid.inertia_response must be positive, got %v", g.InertiaResponse)
	check(g.Friction > 0, "grid.friction must be positive, got %v", g.Friction)
	check(g.StopSpeed > 0, "grid.stop_speed must be positive, got %v", g.StopSpeed)
	check(g.SettleEpsilon > 0, "grid.settle_epsilon must be positive, got %v", g.SettleEpsilon)
	errs = append(errs, validateDrag("grid.drag", g.Drag)...)

	errs = append(errs, validateList("scroll", c.Scroll)...)
	errs = append(errs, validateList("picker", c.Picker)...)

	t := c.Terminal
	check(t.CellWidth > 0 && t.CellHeight > 0, "terminal cell size must be positive, got %vx%v", t.CellWidth, t.CellHeight)
	check(t.WheelStep > 0, "terminal.wheel_step must be positive, got %v", t.WheelStep)
	check(t.FPS > 0 && t.FPS <= 240, "terminal.fps must be in (0, 240], got %d", t.FPS)

	return errors.Join(errs...)
}

func validateList(name string, l view.ListConfig) []error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(name+"."+format, args...))
		}
	}
	check(l.ItemHeight > 0, "item_height must be positive, got %v", l.ItemHeight)
	check(l.Radius >= 0, "radius must not be negative, got %d", l.Radius)
	check(l.Response > 0, "response must be positive, got %v", l.Response)
	check(l.DragResponse > 0, "drag_response must be positive, got %v", l.DragResponse)
	check(l.Friction > 0, "friction must be positive, got %v", l.Friction)
	check(l.StopSpeed > 0, "stop_speed must be positive, got %v", l.StopSpeed)
	check(l.SettleEpsilon > 0, "settle_epsilon must be positive, got %v", l.SettleEpsilon)
	check(l.Wheel.MaxVelocity > 0, "wheel.max_velocity must be positive, got %v", l.Wheel.MaxVelocity)
	check(l.Wheel.DecayRate > 0, "wheel.decay_rate must be positive, got %v", l.Wheel.DecayRate)
	check(l.Wheel.StopSpeed > 0, "wheel.stop_speed must be positive, got %v", l.Wheel.StopSpeed)
	check(inUnit(l.Wheel.Smoothing), "wheel.smoothing must be in (0, 1], got %v", l.Wheel.Smoothing)
	s := l.Stretch
	check(s.ResponseMin > 0 && s.ResponseMax >= s.ResponseMin, "stretch response must satisfy 0 < min <= max, got %v/%v", s.ResponseMin, s.ResponseMax)
	check(s.Epsilon > 0, "stretch.epsilon must be positive, got %v", s.Epsilon)
	check(s.Exponent > 0, "stretch.exponent must be positive, got %v", s.Exponent)
	check(s.Profile.MinScale > 0, "stretch.profile.min_scale must be positive, got %v", s.Profile.MinScale)
	check(s.Profile.MaxStretch >= 0 && s.Profile.MaxShrink >= 0, "stretch.profile magnitudes must not be negative")
	check(s.Profile.MinScale <= 1+s.Profile.MaxStretch, "stretch.profile.min_scale must not exceed 1 + max_stretch, got %v > %v", s.Profile.MinScale, 1+s.Profile.MaxStretch)
	for _, err := range validateDrag("drag", l.Drag) {
		errs = append(errs, fmt.Errorf("%s.%w", name, err))
	}
	return errs
}

func validateDrag(name string, d input.DragConfig) []error {
	var errs []error
	if d.Threshold < 0 {
		errs = append(errs, fmt.Errorf("%s.threshold must not be negative, got %v", name, d.Threshold))
	}
	if !inUnit(d.Smoothing) {
		errs = append(errs, fmt.Errorf("%s.smoothing must be in (0, 1], got %v", name, d.Smoothing))
	}
	if d.Boost < 1 {
		errs = append(errs, fmt.Errorf("%s.boost must be at least 1, got %v", name, d.Boost))
	}
	return errs
}

func inUnit(f float64) bool { return f > 0 && f <= 1 }
