package snapshot

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivier-w/folio/internal/motion"
	"github.com/olivier-w/folio/internal/raster"
	"github.com/olivier-w/folio/internal/tiling"
	"github.com/olivier-w/folio/internal/view"
)

func rgb(img image.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func gridFrame() view.GridFrame {
	return view.GridFrame{
		Viewport: motion.Vec2{X: 100, Y: 100},
		CellSize: 50,
		Tiles: []tiling.Tile{
			{Cell: tiling.Cell{Col: 0, Row: 0}, X: 0, Y: 0, Image: 0},
			{Cell: tiling.Cell{Col: 1, Row: 0}, X: 50, Y: 0, Image: 1},
		},
	}
}

func TestNewRejectsEmptySize(t *testing.T) {
	_, err := New(Options{Width: 0, Height: 10})
	require.Error(t, err)
}

func TestDrawGridPlaceholders(t *testing.T) {
	s, err := New(Options{Width: 100, Height: 100, Pool: 2})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.DrawGrid(gridFrame()))
	img := s.Image()

	bg := raster.Background
	r, g, b := rgb(img, 25, 25)
	assert.NotEqual(t, [3]uint8{bg.R, bg.G, bg.B}, [3]uint8{r, g, b})

	r, g, b = rgb(img, 25, 75)
	assert.InDelta(t, float64(bg.R), float64(r), 2)
	assert.InDelta(t, float64(bg.G), float64(g), 2)
	assert.InDelta(t, float64(bg.B), float64(b), 2)
}

func TestDrawGridUsesSourceImages(t *testing.T) {
	red := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(red.Pix); i += 4 {
		red.Pix[i], red.Pix[i+3] = 255, 255
	}
	s, err := New(Options{
		Width: 100, Height: 100, Pool: 2,
		Source: func(index int) image.Image {
			if index == 0 {
				return red
			}
			return nil
		},
	})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.DrawGrid(gridFrame()))
	r, g, _ := rgb(s.Image(), 25, 25)
	assert.Greater(t, r, uint8(200))
	assert.Less(t, g, uint8(60))
}

func TestDrawListAndSave(t *testing.T) {
	s, err := New(Options{Width: 100, Height: 100, Pool: 3, Gap: 0.1})
	require.NoError(t, err)
	defer s.Close()

	frame := view.ListFrame{
		ItemHeight: 20,
		Viewport:   motion.Vec2{X: 100, Y: 100},
		Items: []view.Item{
			{Index: 0, ScaleY: 1.5, Opacity: 1, Uniforms: view.Uniforms{PositionX: 50, PositionY: 50}},
			{Index: 1, ScaleY: 0.8, Opacity: 0.6, Uniforms: view.Uniforms{PositionX: 50, PositionY: 75}},
		},
	}
	require.NoError(t, s.DrawList(frame))

	want := raster.Placeholder(0, 3)
	r, g, b := rgb(s.Image(), 50, 50)
	assert.InDelta(t, float64(want.R), float64(r), 3)
	assert.InDelta(t, float64(want.G), float64(g), 3)
	assert.InDelta(t, float64(want.B), float64(b), 3)

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, s.SavePNG(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
