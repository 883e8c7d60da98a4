package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivier-w/folio/internal/input"
	"github.com/olivier-w/folio/internal/motion"
	"github.com/olivier-w/folio/internal/tiling"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

const frame = 1.0 / 60

func at(ms int) time.Time { return epoch.Add(time.Duration(ms) * time.Millisecond) }

func press(action input.PointerAction, x, y float64, ms int) input.PointerEvent {
	return input.PointerEvent{Action: action, Point: motion.Vec2{X: x, Y: y}, At: at(ms)}
}

// runUntilRest drives v through its own driver with synthetic frame times
// and returns the number of frames taken.
func runUntilRest(t *testing.T, v View, limit int) int {
	t.Helper()
	d := v.Driver()
	d.Start(epoch)
	now := epoch
	for i := 0; d.Running(); i++ {
		require.Less(t, i, limit, "%s never came to rest", v.Name())
		now = now.Add(time.Second / 60)
		d.Advance(now)
	}
	return int(d.Frames())
}

func TestGridDragAndRelease(t *testing.T) {
	g := NewGrid(DefaultGridConfig(), 20, motion.Vec2{X: 800, Y: 600}, 60)
	home := g.State().Current

	g.Pointer(press(input.PointerDown, 100, 100, 0))
	g.Pointer(press(input.PointerMove, 150, 100, 16))
	require.True(t, g.Dragging())
	assert.Equal(t, home.Add(motion.Vec2{X: 50}), g.State().Target)

	beforeRelease := g.State().Velocity
	g.Pointer(press(input.PointerUp, 150, 100, 16))
	assert.False(t, g.Dragging())
	assert.InDelta(t, beforeRelease.X*DefaultGridConfig().Drag.Boost, g.State().Velocity.X, 1e-9)

	prev := g.State().Current.X
	stoppedAfter := -1
	for i := 0; i < 60; i++ {
		g.Step(frame)
		cur := g.State().Current.X
		require.GreaterOrEqual(t, cur, prev, "camera reversed at tick %d", i)
		prev = cur
		if stoppedAfter < 0 && g.State().Velocity.IsZero() {
			stoppedAfter = i
		}
	}
	require.GreaterOrEqual(t, stoppedAfter, 0, "velocity did not reach zero within one second")
	assert.Greater(t, g.State().Current.X, home.X+50, "fling carries past the release point")
}

func TestGridTerminatesAfterFling(t *testing.T) {
	g := NewGrid(DefaultGridConfig(), 20, motion.Vec2{X: 800, Y: 600}, 60)
	g.Pointer(press(input.PointerDown, 0, 0, 0))
	for i := 1; i <= 10; i++ {
		g.Pointer(press(input.PointerMove, float64(i*40), float64(i*-25), i*8))
	}
	g.Pointer(press(input.PointerUp, 400, -250, 80))

	frames := runUntilRest(t, g, 600)
	assert.Greater(t, frames, 1)
	assert.True(t, g.State().Settled(DefaultGridConfig().SettleEpsilon))
	assert.Equal(t, g.State().Current, g.State().Target)
}

func TestGridClickDoesNotMove(t *testing.T) {
	g := NewGrid(DefaultGridConfig(), 20, motion.Vec2{X: 800, Y: 600}, 60)
	before := g.State()
	g.Pointer(press(input.PointerDown, 10, 10, 0))
	g.Pointer(press(input.PointerMove, 12, 11, 10))
	g.Pointer(press(input.PointerUp, 12, 11, 20))
	assert.False(t, g.Step(frame))
	assert.Equal(t, before, g.State())
}

func TestGridHomeCentersCellZero(t *testing.T) {
	g := NewGrid(DefaultGridConfig(), 20, motion.Vec2{X: 800, Y: 600}, 60)
	assert.Equal(t, tiling.Cell{}, g.Center())

	f := g.Frame()
	require.Len(t, f.Tiles, 49)
	for _, tile := range f.Tiles {
		if tile.Cell == (tiling.Cell{}) {
			assert.Equal(t, motion.Vec2{X: 300, Y: 200}, f.Screen(tile))
		}
	}
}

func TestGridFrameIsReadOnly(t *testing.T) {
	g := NewGrid(DefaultGridConfig(), 20, motion.Vec2{X: 800, Y: 600}, 60)
	g.Pointer(press(input.PointerDown, 0, 0, 0))
	g.Pointer(press(input.PointerMove, 300, 0, 16))
	g.Step(frame)

	state := g.State()
	first := g.Frame()
	second := g.Frame()
	assert.Equal(t, first, second)
	assert.Equal(t, state, g.State())
}

func TestGridRowOffsetsApplyOnExactWidth(t *testing.T) {
	cfg := DefaultGridConfig()
	cfg.RowOffsets = []RowOffset{{Width: 1440, Offset: -12}}

	g := NewGrid(cfg, 20, motion.Vec2{X: 1440, Y: 900}, 60)
	assert.Equal(t, g.State().Current.Y-12, g.Frame().Offset.Y)

	g.Resize(input.ResizeEvent{Width: 1441, Height: 900})
	assert.Equal(t, g.State().Current.Y, g.Frame().Offset.Y)
}

func TestGridDetachResetsGesture(t *testing.T) {
	var mux input.Mux
	g := NewGrid(DefaultGridConfig(), 20, motion.Vec2{X: 800, Y: 600}, 60)
	g.Attach(&mux)
	require.True(t, g.Attached())

	mux.DispatchPointer(press(input.PointerDown, 0, 0, 0))
	mux.DispatchPointer(press(input.PointerMove, 90, 0, 16))
	g.Driver().Start(epoch)
	require.True(t, g.Dragging())

	g.Detach()
	g.Detach()
	assert.False(t, g.Attached())
	assert.False(t, mux.Attached())
	assert.False(t, g.Dragging())
	assert.False(t, g.Driver().Running())
	assert.True(t, g.State().Velocity.IsZero())

	// Input after detach goes nowhere.
	target := g.State().Target
	mux.DispatchPointer(press(input.PointerDown, 0, 0, 30))
	mux.DispatchPointer(press(input.PointerMove, 200, 0, 40))
	assert.Equal(t, target, g.State().Target)
}

func TestGridPanToAndFling(t *testing.T) {
	g := NewGrid(DefaultGridConfig(), 12, motion.Vec2{X: 800, Y: 600}, 60)
	home := g.State().Current

	g.PanTo(motion.Vec2{X: 120, Y: -40})
	st := g.State()
	assert.Equal(t, home.Add(motion.Vec2{X: 120, Y: -40}), st.Current)
	assert.Equal(t, st.Current, st.Target)

	g.Fling(motion.Vec2{X: 900})
	runUntilRest(t, g, 600)
	assert.Greater(t, g.State().Current.X, st.Current.X)
	assert.InDelta(t, st.Current.Y, g.State().Current.Y, 1e-9)
}

func TestGridTilesCoverViewport(t *testing.T) {
	covers := func(t *testing.T, g *Grid) {
		t.Helper()
		f := g.Frame()
		require.NotEmpty(t, f.Tiles)
		lo := f.Screen(f.Tiles[0])
		hi := lo
		for _, tile := range f.Tiles {
			p := f.Screen(tile)
			lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
			hi.X, hi.Y = max(hi.X, p.X+f.CellSize), max(hi.Y, p.Y+f.CellSize)
		}
		assert.LessOrEqual(t, lo.X, 0.0)
		assert.LessOrEqual(t, lo.Y, 0.0)
		assert.GreaterOrEqual(t, hi.X, f.Viewport.X)
		assert.GreaterOrEqual(t, hi.Y, f.Viewport.Y)
	}

	pans := []motion.Vec2{{}, {X: 90}, {X: -90, Y: 30}, {X: 199.5, Y: -199.5}, {X: -1234.25, Y: 777}}
	g := NewGrid(DefaultGridConfig(), 20, motion.Vec2{X: 1280, Y: 800}, 60)
	for _, pan := range pans {
		g.PanTo(pan)
		covers(t, g)
	}

	g.Resize(input.ResizeEvent{Width: 2560, Height: 600})
	for _, pan := range pans {
		g.PanTo(pan)
		covers(t, g)
	}
}
