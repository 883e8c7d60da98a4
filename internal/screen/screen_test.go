package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/motion"
	"github.com/olivier-w/folio/internal/view"
)

func TestNextCycles(t *testing.T) {
	assert.Equal(t, Scroll, Grid.Next())
	assert.Equal(t, Picker, Scroll.Next())
	assert.Equal(t, Grid, Picker.Next())
	assert.Equal(t, Picker, Grid.Prev())
	assert.Equal(t, Grid, Scroll.Prev())
}

func TestParse(t *testing.T) {
	for in, want := range map[string]Kind{"": Grid, "Grid": Grid, "list": Scroll, " picker ": Picker} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := Parse("carousel")
	require.Error(t, err)
}

func TestNewBuildsMatchingViews(t *testing.T) {
	cfg := config.Default()
	vp := motion.Vec2{X: 640, Y: 480}

	for _, k := range All {
		v := New(k, cfg, 6, vp)
		assert.Equal(t, k.String(), v.Name())
		assert.False(t, v.Driver().Running())
	}

	l, ok := New(Picker, cfg, 6, vp).(*view.List)
	require.True(t, ok)
	assert.Equal(t, view.KindPicker, l.Kind())
	assert.Equal(t, 6, l.Count())
}
