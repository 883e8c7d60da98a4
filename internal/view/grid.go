package view

import (
	"math"

	"github.com/olivier-w/folio/internal/driver"
	"github.com/olivier-w/folio/internal/input"
	"github.com/olivier-w/folio/internal/motion"
	"github.com/olivier-w/folio/internal/tiling"
)

// GridFrame is everything a renderer needs to draw the grid: the world
// translation and the visible tiles in world coordinates.
type GridFrame struct {
	Offset   motion.Vec2
	Viewport motion.Vec2
	CellSize float64
	Tiles    []tiling.Tile
}

// Screen returns the top-left screen position of t.
func (f GridFrame) Screen(t tiling.Tile) motion.Vec2 {
	return motion.Vec2{X: t.X + f.Offset.X, Y: t.Y + f.Offset.Y}
}

// Grid is the infinite draggable image grid.
type Grid struct {
	cfg      GridConfig
	grid     tiling.Grid
	state    motion.State
	drag     *input.Drag
	inertia  motion.Inertia
	tracker  *tiling.GridTracker
	viewport motion.Vec2
	driver   *driver.Driver
	binding  Binding
}

// NewGrid builds a grid over a pool of images, centered on cell (0, 0).
func NewGrid(cfg GridConfig, images int, viewport motion.Vec2, fps int) *Grid {
	g := &Grid{
		cfg:      cfg,
		grid:     tiling.Grid{CellSize: cfg.CellSize, Images: images},
		drag:     input.NewDrag(cfg.Drag),
		inertia:  motion.Inertia{Friction: cfg.Friction, StopSpeed: cfg.StopSpeed},
		viewport: viewport,
	}
	g.grid.Radius = g.radius()
	g.tracker = tiling.NewGridTracker(g.grid)
	g.driver = driver.New("grid", g, fps)
	g.Reset()
	return g
}

func (g *Grid) Name() string { return "grid" }
func (g *Grid) Driver() *driver.Driver { return g.driver }
func (g *Grid) State() motion.State { return g.state }
func (g *Grid) Dragging() bool { return g.drag.Dragging() }
func (g *Grid) Attach(src Source) { g.binding.Attach(src, g) }
func (g *Grid) Attached() bool { return g.binding.Attached() }
func (g *Grid) Center() tiling.Cell { return g.tracker.Center() }
func (g *Grid) Config() GridConfig { return g.cfg }
func (g *Grid) Viewport() motion.Vec2 { return g.viewport }
func (g *Grid) ImagePool() int { return g.grid.Images }

// Detach stops listening, cancels pending frames and drops any half-done
// gesture so nothing replays when the grid is shown again.
func (g *Grid) Detach() {
	g.binding.Detach()
	g.driver.Stop()
	g.drag.Reset()
	g.state.Velocity = motion.Vec2{}
}

// Reset centers cell (0, 0) in the viewport at rest.
func (g *Grid) Reset() {
	g.drag.Reset()
	g.state.Reset(g.home())
	g.tracker.Invalidate()
	g.tracker.Update(g.offset(), g.viewport)
}

// PanTo places the camera at offset from home, at rest.
func (g *Grid) PanTo(offset motion.Vec2) {
	g.drag.Reset()
	g.state.Reset(g.home().Add(offset))
	g.tracker.Invalidate()
	g.tracker.Update(g.offset(), g.viewport)
}

// Fling sets the camera velocity in px/s as if a drag had just been
// released.
func (g *Grid) Fling(v motion.Vec2) {
	if v.Finite() {
		g.state.Velocity = v
	}
}

// radius is the configured radius, or when that is 0 the smallest one whose
// tiles always cover the viewport, plus a cell of margin.
func (g *Grid) radius() int {
	if g.cfg.Radius > 0 {
		return g.cfg.Radius
	}
	if g.cfg.CellSize <= 0 {
		return 0
	}
	return int(math.Ceil(max(g.viewport.X, g.viewport.Y)/2/g.cfg.CellSize)) + 1
}

func (g *Grid) home() motion.Vec2 {
	half := g.cfg.CellSize / 2
	return motion.Vec2{X: g.viewport.X/2 - half, Y: g.viewport.Y/2 - half}
}

func (g *Grid) offset() motion.Vec2 {
	return g.state.Current.Add(motion.Vec2{Y: g.cfg.rowOffset(g.viewport.X)})
}

func (g *Grid) Pointer(ev input.PointerEvent) {
	switch ev.Action {
	case input.PointerDown:
		g.drag.Down(ev, &g.state)
	case input.PointerMove:
		g.drag.Move(ev, &g.state, input.AxisBoth)
	case input.PointerUp:
		g.drag.Up(ev, &g.state)
	case input.PointerCancel:
		g.drag.Cancel(ev, &g.state)
	}
}

// Wheel is ignored; the grid only pans by dragging.
func (g *Grid) Wheel(input.WheelEvent) {}

func (g *Grid) Resize(ev input.ResizeEvent) {
	if ev.Width <= 0 || ev.Height <= 0 {
		return
	}
	g.viewport = motion.Vec2{X: ev.Width, Y: ev.Height}
	if r := g.radius(); r != g.grid.Radius {
		g.grid.Radius = r
		g.tracker = tiling.NewGridTracker(g.grid)
	}
	g.tracker.Invalidate()
	g.tracker.Update(g.offset(), g.viewport)
}

// Step integrates, then re-addresses tiles. It returns false once the
// camera is at rest and no drag is in progress.
func (g *Grid) Step(dt float64) bool {
	dragging := g.drag.Dragging()
	rate := g.cfg.InertiaResponse
	if dragging {
		rate = g.cfg.DragResponse
	} else {
		g.state.Velocity, g.state.Target = g.inertia.Step2(g.state.Velocity, g.state.Target, dt)
	}
	g.state.Current = motion.Follow2(g.state.Current, g.state.Target, rate, dt)

	active := dragging || !g.state.Settled(g.cfg.SettleEpsilon)
	if !active {
		g.state.Snap()
	}
	g.tracker.Update(g.offset(), g.viewport)
	return active
}

// Frame returns the current render input. It does not change any state.
func (g *Grid) Frame() GridFrame {
	return GridFrame{
		Offset:   g.offset(),
		Viewport: g.viewport,
		CellSize: g.cfg.CellSize,
		Tiles:    g.tracker.Tiles(),
	}
}
