package view

import (
	"github.com/olivier-w/folio/internal/input"
	"github.com/olivier-w/folio/internal/stretch"
)

// RowOffset is a hand-tuned vertical correction for one exact viewport
// width. It is alignment data, not a formula.
type RowOffset struct {
	Width  float64 `yaml:"width"`
	Offset float64 `yaml:"offset"`
}

// GridConfig tunes the draggable infinite grid.
type GridConfig struct {
	DragResponse    float64          `yaml:"drag_response"`
	InertiaResponse float64          `yaml:"inertia_response"`
	Friction        float64          `yaml:"friction"`
	StopSpeed       float64          `yaml:"stop_speed"`
	SettleEpsilon   float64          `yaml:"settle_epsilon"`
	CellSize        float64          `yaml:"cell_size"`
	Radius          int              `yaml:"radius"` // 0 sizes to the viewport
	Drag            input.DragConfig `yaml:"drag"`
	RowOffsets      []RowOffset      `yaml:"row_offsets"`
}

// DefaultGridConfig returns the tuned grid feel.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		DragResponse:    18,
		InertiaResponse: 9,
		Friction:        7,
		StopSpeed:       10,
		SettleEpsilon:   0.5,
		CellSize:        200,
		Drag:            input.DefaultDragConfig(),
	}
}

func (c GridConfig) rowOffset(width float64) float64 {
	for _, r := range c.RowOffsets {
		if r.Width == width {
			return r.Offset
		}
	}
	return 0
}

// StretchConfig controls how the stretch magnitude chases scroll speed.
type StretchConfig struct {
	ResponseMin float64         `yaml:"response_min"` // 1/s while relaxing
	ResponseMax float64         `yaml:"response_max"` // 1/s while building up
	Exponent    float64         `yaml:"exponent"`
	Epsilon     float64         `yaml:"epsilon"`
	Profile     stretch.Profile `yaml:"profile"`
}

// ListConfig tunes a looping list: the stretching scroll list or the picker.
type ListConfig struct {
	Response      float64           `yaml:"response"`
	DragResponse  float64           `yaml:"drag_response"`
	Friction      float64           `yaml:"friction"`
	StopSpeed     float64           `yaml:"stop_speed"`
	SettleEpsilon float64           `yaml:"settle_epsilon"`
	ItemHeight    float64           `yaml:"item_height"`
	Radius        int               `yaml:"radius"` // 0 sizes to the viewport
	Snap          bool              `yaml:"snap"`
	Drag          input.DragConfig  `yaml:"drag"`
	Wheel         input.WheelConfig `yaml:"wheel"`
	Stretch       StretchConfig     `yaml:"stretch"`
}

// DefaultScrollConfig returns the tuned scroll list feel.
func DefaultScrollConfig() ListConfig {
	return ListConfig{
		Response:      10,
		DragResponse:  20,
		Friction:      5,
		StopSpeed:     8,
		SettleEpsilon: 0.5,
		ItemHeight:    96,
		Drag:          input.DefaultDragConfig(),
		Wheel:         input.DefaultWheelConfig(),
		Stretch: StretchConfig{
			ResponseMin: 12,
			ResponseMax: 20,
			Exponent:    0.6,
			Epsilon:     1e-3,
			Profile:     stretch.DefaultScroll(),
		},
	}
}

// DefaultPickerConfig returns the tuned picker feel.
func DefaultPickerConfig() ListConfig {
	cfg := DefaultScrollConfig()
	cfg.Response = 14
	cfg.Friction = 6
	cfg.ItemHeight = 64
	cfg.Radius = 4
	cfg.Snap = true
	cfg.Stretch.Exponent = 0.62
	cfg.Stretch.Profile = stretch.DefaultPicker()
	return cfg
}
