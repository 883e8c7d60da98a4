// Package window hosts the portfolio views in a desktop window with real
// pixel pointer and wheel input.
package window

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/gallery"
	"github.com/olivier-w/folio/internal/input"
	"github.com/olivier-w/folio/internal/media"
	"github.com/olivier-w/folio/internal/motion"
	"github.com/olivier-w/folio/internal/raster"
	"github.com/olivier-w/folio/internal/screen"
	"github.com/olivier-w/folio/internal/sound"
	"github.com/olivier-w/folio/internal/view"
)

const (
	// wheelPx converts one ebiten wheel unit to pixels.
	wheelPx = 40
	// thumbPx is the square size images are decoded to before upload.
	thumbPx = 512
)

// Options configures the window host.
type Options struct {
	Title   string
	Width   int
	Height  int
	Screen  screen.Kind
	Config  config.Config
	Gallery *gallery.Gallery
	Clicker *sound.Clicker // may be nil
	Reloads <-chan config.Config
}

type game struct {
	opts   Options
	cfg    config.Config
	kind   screen.Kind
	mux    input.Mux
	poller input.Poller
	view   view.View
	size   image.Point

	cache  *raster.Cache
	loader *raster.Loader
	thumbs map[int]*ebiten.Image

	selected int
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Gallery == nil {
		opts.Gallery = gallery.Default()
	}
	g := &game{
		opts:   opts,
		cfg:    opts.Config,
		kind:   opts.Screen,
		size:   image.Pt(opts.Width, opts.Height),
		cache:  raster.NewCache(),
		thumbs: make(map[int]*ebiten.Image),
	}
	g.loader = raster.NewLoader(g.cache, func(k raster.Key) (*image.RGBA, error) {
		return media.Load(opts.Gallery.At(k.Index).Path, k.W, k.H)
	})
	defer g.loader.Close()
	g.activate(opts.Screen)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.Config.Terminal.FPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func (g *game) viewport() motion.Vec2 {
	return motion.Vec2{X: float64(g.size.X), Y: float64(g.size.Y)}
}

// activate throws the current view away and builds a fresh one.
func (g *game) activate(k screen.Kind) {
	if g.view != nil {
		g.view.Detach()
	}
	g.kind = k
	g.view = screen.New(k, g.cfg, g.opts.Gallery.Len(), g.viewport())
	g.view.Attach(&g.mux)
	g.poller.Reset()
	g.selected = 0
	slog.Debug("Window screen activated", "screen", k.String())
}

func (g *game) Update() error {
	now := time.Now()

	select {
	case cfg := <-g.opts.Reloads:
		g.cfg = cfg
		slog.Debug("Window picked up new config; applies on next screen")
	default:
	}
	g.loader.Drain()
	g.loader.Start()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.activate(g.kind.Next())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.activate(g.kind)
	}

	x, y := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	sample := input.Sample{
		Point:  motion.Vec2{X: float64(x), Y: float64(y)},
		Down:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		WheelX: -wx * wheelPx,
		WheelY: -wy * wheelPx,
	}
	ptr, wheel := g.poller.Poll(sample, now)
	for _, ev := range ptr {
		g.mux.DispatchPointer(ev)
	}
	if wheel != nil {
		g.mux.DispatchWheel(*wheel)
	}

	d := g.view.Driver()
	if len(ptr) > 0 || wheel != nil {
		d.Start(now)
	}
	if d.Running() {
		d.Advance(now)
	}

	if l, ok := g.view.(*view.List); ok && l.Kind() == view.KindPicker {
		if sel := l.Selected(); sel != g.selected {
			g.selected = sel
			g.opts.Clicker.Play()
		}
	}
	return nil
}

// thumb returns the uploaded image for index or nil. A miss queues a
// background decode that the next Update starts.
func (g *game) thumb(index int) *ebiten.Image {
	if img, ok := g.thumbs[index]; ok {
		return img
	}
	if !g.opts.Gallery.At(index).HasImage() {
		return nil
	}
	rgba := g.cache.Thumb(index, thumbPx, thumbPx)
	if rgba == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(rgba)
	g.thumbs[index] = img
	return img
}

func toColor(c raster.RGB, alpha float64) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
}

func (g *game) drawItem(dst *ebiten.Image, index int, x, y, w, h, alpha float64) {
	img := g.thumb(index)
	if img == nil {
		c := raster.Placeholder(index, g.opts.Gallery.Len())
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), toColor(c, alpha), false)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func (g *game) Draw(dst *ebiten.Image) {
	bg := raster.Background
	dst.Fill(color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 0xff})

	switch v := g.view.(type) {
	case *view.Grid:
		g.drawGrid(dst, v.Frame())
	case *view.List:
		g.drawList(dst, v)
	}

	st := g.view.State()
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%s  x %.0f  y %.0f  v %.0f  [tab] next  [r] reset  [esc] quit",
		g.kind.Title(), st.Current.X, st.Current.Y, st.Velocity.Len()), 8, 8)
}

func (g *game) drawGrid(dst *ebiten.Image, f view.GridFrame) {
	inset := f.CellSize * 0.04
	size := f.CellSize - 2*inset
	for _, t := range f.Tiles {
		p := f.Screen(t)
		g.drawItem(dst, t.Image, p.X+inset, p.Y+inset, size, size, 1)
	}
}

func (g *game) drawList(dst *ebiten.Image, l *view.List) {
	f := l.Frame()
	rest := f.ItemHeight * 0.88
	w := f.Viewport.X * 0.35
	x := f.Viewport.X*0.5 - w - 16
	for _, it := range f.Items {
		h := rest * it.ScaleY
		y := it.Uniforms.PositionY - h/2
		g.drawItem(dst, it.Index, x, y, w, h, it.Opacity)

		item := g.opts.Gallery.At(it.Index)
		label := item.Title
		if item.Subtitle != "" {
			label += " / " + item.Subtitle
		}
		if l.Kind() == view.KindPicker && it.Slot == 0 {
			label = "> " + label
		}
		ebitenutil.DebugPrintAt(dst, label, int(f.Viewport.X*0.5), int(it.Uniforms.PositionY)-8)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.size.X || outsideHeight != g.size.Y {
		g.size = image.Pt(outsideWidth, outsideHeight)
		g.mux.DispatchResize(input.ResizeEvent{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}
