package ui

import (
	"image"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/driver"
	"github.com/olivier-w/folio/internal/gallery"
	"github.com/olivier-w/folio/internal/input"
	"github.com/olivier-w/folio/internal/motion"
	"github.com/olivier-w/folio/internal/raster"
	"github.com/olivier-w/folio/internal/screen"
	"github.com/olivier-w/folio/internal/sound"
	"github.com/olivier-w/folio/internal/view"
)

const (
	gridGap = 0.08
	listGap = 0.12
)

// Options configures a Model.
type Options struct {
	Config  config.Config
	Gallery *gallery.Gallery
	Screen  screen.Kind

	// Clicker plays the picker tick; nil keeps the shell silent.
	Clicker *sound.Clicker

	// Renderer defaults to one matching the terminal's color support.
	Renderer *raster.Renderer

	// Clock and Rand default to time.Now and a time-seeded source.
	Clock func() time.Time
	Rand  *rand.Rand
}

// Model is the Bubbletea model for the portfolio shell. It hosts one view
// at a time, forwards terminal input into it and paints its frames.
type Model struct {
	cfg     config.Config
	pending *config.Config
	gallery *gallery.Gallery
	clicker *sound.Clicker
	now     func() time.Time
	rng     *rand.Rand

	kind  screen.Kind
	view  view.View
	mux   *input.Mux
	mouse *mouseState

	renderer *raster.Renderer
	canvas   *raster.Canvas
	cache    *raster.Cache
	epoch    int
	body     string

	keys      KeyMap
	help      help.Model
	indicator indicator
	ticking   bool

	index     indexModel
	showIndex bool

	width, height int
	ready         bool
	selected      int
	quitting      bool
}

// New builds the shell on its first screen. The view is rebuilt once the
// terminal reports its size.
func New(opts Options) Model {
	if opts.Gallery == nil {
		opts.Gallery = gallery.Default()
	}
	if opts.Renderer == nil {
		opts.Renderer = raster.NewRenderer()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := Model{
		cfg:       opts.Config,
		gallery:   opts.Gallery,
		clicker:   opts.Clicker,
		now:       opts.Clock,
		rng:       opts.Rand,
		mux:       &input.Mux{},
		mouse:     &mouseState{},
		renderer:  opts.Renderer,
		cache:     raster.NewCache(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		indicator: newIndicator(),
		index:     newIndex(),
		width:     80,
		height:    24,
	}
	m.activate(opts.Screen)
	m.indicator.pos = m.indicator.target
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle(m.kind))
}

func windowTitle(k screen.Kind) string {
	return "folio · " + k.Title()
}

// Kind returns the active screen.
func (m Model) Kind() screen.Kind { return m.kind }

// ActiveView returns the view on screen.
func (m Model) ActiveView() view.View { return m.view }

func (m Model) cols() int { return m.width }

func (m Model) viewRows() int {
	rows := m.height - topbarRows - 1
	if rows < 0 {
		return 0
	}
	return rows
}

func (m Model) viewport() motion.Vec2 {
	t := m.cfg.Terminal
	return motion.Vec2{X: float64(m.cols()) * t.CellWidth, Y: float64(m.viewRows()) * t.CellHeight}
}

// activate detaches the current view and builds a fresh one for k, so a
// screen always opens at its home position with the latest configuration.
func (m *Model) activate(k screen.Kind) {
	if m.view != nil {
		m.view.Detach()
	}
	if m.pending != nil {
		m.cfg = *m.pending
		m.pending = nil
		slog.Info("Applied reloaded config", "screen", k.String())
	}
	m.kind = k
	m.view = screen.New(k, m.cfg, m.gallery.Len(), m.viewport())
	m.view.Attach(m.mux)
	m.mouse.reset()
	m.selected = -1
	if l, ok := m.view.(*view.List); ok {
		m.selected = l.Selected()
	}
	m.indicator.target = tabStart(k)
	m.index.focus(k)
	slog.Debug("Screen activated", "screen", k.String())
}

func (m *Model) switchTo(k screen.Kind) tea.Cmd {
	m.activate(k)
	return tea.Batch(m.render(), m.chromeCmd(), tea.SetWindowTitle(windowTitle(k)))
}

func (m *Model) chromeCmd() tea.Cmd {
	if m.ticking || !m.indicator.moving() {
		return nil
	}
	m.ticking = true
	return chromeTickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.index.setSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.clearThumbs()
		if !m.ready {
			// The first size is the real one; rebuild so home is centered.
			m.ready = true
			m.activate(m.kind)
			m.indicator.pos = m.indicator.target
		} else {
			vp := m.viewport()
			m.mux.DispatchResize(input.ResizeEvent{Width: vp.X, Height: vp.Y})
		}
		return m, m.render()

	case ConfigReloadedMsg:
		cfg := msg.Config
		m.pending = &cfg
		slog.Debug("Config reload queued")
		return m, nil

	case driver.FrameMsg:
		d := m.view.Driver()
		if !d.Owns(msg) {
			return m, nil
		}
		cmd := d.HandleFrame(msg)
		m.afterStep()
		return m, tea.Batch(cmd, m.render())

	case chromeTickMsg:
		if m.indicator.step() {
			return m, chromeTickCmd()
		}
		m.ticking = false
		return m, nil

	case thumbLoadedMsg:
		if msg.epoch != m.epoch {
			return m, nil
		}
		if msg.err != nil {
			slog.Debug("Thumbnail load failed", "index", msg.key.Index, "error", msg.err)
			m.cache.Fail(msg.key)
		} else {
			m.cache.Put(msg.key, msg.img)
		}
		return m, m.render()

	case screenSelectedMsg:
		m.showIndex = false
		return m, m.switchTo(msg.kind)

	case indexClosedMsg:
		m.showIndex = false
		return m, nil

	case tea.MouseMsg:
		if m.showIndex {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.showIndex {
			var cmd tea.Cmd
			m.index, cmd = m.index.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Next):
		return m, m.switchTo(m.kind.Next())
	case key.Matches(msg, m.keys.Prev):
		return m, m.switchTo(m.kind.Prev())
	case key.Matches(msg, m.keys.Index):
		m.showIndex = true
		m.index.focus(m.kind)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		return m, m.wheel(-m.cfg.Terminal.WheelStep)
	case key.Matches(msg, m.keys.Down):
		return m, m.wheel(m.cfg.Terminal.WheelStep)
	case key.Matches(msg, m.keys.Reset):
		m.view.Driver().Stop()
		m.view.Reset()
		m.mouse.reset()
		m.afterStep()
		return m, m.render()
	case key.Matches(msg, m.keys.Shuffle):
		if m.gallery.IsShuffled() {
			m.gallery.Unshuffle()
		} else {
			m.gallery.Shuffle(m.rng)
		}
		m.clearThumbs()
		return m, m.render()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.view.Detach()
	m.clicker.Close()
	return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
}

func (m *Model) wheel(dy float64) tea.Cmd {
	now := m.now()
	m.mux.DispatchWheel(input.WheelEvent{DeltaY: dy, At: now})
	return m.view.Driver().StartCmd(now)
}

// afterStep runs host side effects of a step: the picker ticks whenever a
// new row reaches the center line.
func (m *Model) afterStep() {
	l, ok := m.view.(*view.List)
	if !ok {
		return
	}
	sel := l.Selected()
	if sel == m.selected {
		return
	}
	m.selected = sel
	if l.Kind() == view.KindPicker {
		m.clicker.Play()
	}
}

func (m *Model) clearThumbs() {
	m.cache.Clear()
	m.epoch++
}

// thumbSource only asks the cache for items that have an image on disk.
type thumbSource struct {
	cache   *raster.Cache
	gallery *gallery.Gallery
}

func (s thumbSource) Thumb(index, w, h int) *image.RGBA {
	if !s.gallery.At(index).HasImage() {
		return nil
	}
	return s.cache.Thumb(index, w, h)
}

func (m *Model) painter(gap float64) raster.Painter {
	t := m.cfg.Terminal
	return raster.Painter{
		Scale:  motion.Vec2{X: 1 / t.CellWidth, Y: 2 / t.CellHeight},
		Gap:    gap,
		Pool:   m.gallery.Len(),
		Thumbs: thumbSource{cache: m.cache, gallery: m.gallery},
	}
}

func (m *Model) canvasFor(w, h int) *raster.Canvas {
	if m.canvas == nil || m.canvas.W != w || m.canvas.H != h {
		m.canvas = raster.NewCanvas(w, h)
	}
	m.canvas.Clear(raster.Background)
	return m.canvas
}

// render paints the current frame into m.body and returns the loads for
// any thumbnails the frame asked for. View only reads m.body.
func (m *Model) render() tea.Cmd {
	rows, cols := m.viewRows(), m.cols()
	if rows <= 0 || cols <= 0 {
		m.body = ""
		return nil
	}

	switch v := m.view.(type) {
	case *view.Grid:
		c := m.canvasFor(cols, rows*2)
		m.painter(gridGap).Grid(c, v.Frame())
		m.body = m.renderer.Render(c)
	case *view.List:
		m.body = m.renderList(v, rows, cols)
	}
	return m.loadCmds()
}

// thumbColumn returns the first column and width of the list thumbnails.
func thumbColumn(cols int) (int, int) {
	w := cols * 2 / 5
	w = max(min(w, 48), 12)
	if w > cols-2 {
		w = max(cols-2, 0)
	}
	return 2, w
}

func (m *Model) renderList(l *view.List, rows, cols int) string {
	t := m.cfg.Terminal
	x, w := thumbColumn(cols)
	f := l.Frame()

	c := m.canvasFor(x+w, rows*2)
	m.painter(listGap).List(c, f, float64(x)*t.CellWidth, float64(w)*t.CellWidth)
	thumbs := strings.Split(m.renderer.Render(c), "\n")

	labels := make([]string, rows)
	labelW := cols - x - w - 2
	if labelW > 0 {
		for _, it := range f.Items {
			row := int(math.Floor(it.Uniforms.PositionY / t.CellHeight))
			if row < 0 || row >= rows {
				continue
			}
			item := m.gallery.At(it.Index)
			switch {
			case l.Kind() == view.KindPicker && it.Slot == 0:
				labels[row] = selectedStyle.Render("› " + item.Title)
			case it.Opacity > 0.9:
				labels[row] = titleStyle.Render(item.Title)
			default:
				labels[row] = dimStyle.Render(item.Title)
			}
			if item.Subtitle != "" && row+1 < rows && labels[row+1] == "" {
				labels[row+1] = subtitleStyle.Render(item.Subtitle)
			}
		}
	}

	var b strings.Builder
	for i := 0; i < rows; i++ {
		if i < len(thumbs) {
			b.WriteString(thumbs[i])
		}
		if labelW > 0 {
			b.WriteString(spaces(2))
			b.WriteString(fit(labels[i], labelW))
		}
		if i < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *Model) loadCmds() tea.Cmd {
	reqs := m.cache.Requests()
	if len(reqs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(reqs))
	for _, k := range reqs {
		item := m.gallery.At(k.Index)
		if !item.HasImage() {
			m.cache.Fail(k)
			continue
		}
		cmds = append(cmds, loadThumbCmd(m.epoch, k, item.Path))
	}
	return tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showIndex {
		return m.index.View()
	}

	body := m.body
	if m.help.ShowAll {
		body = helpStyle.Render(m.help.FullHelpView(m.keys.FullHelp()))
	}
	lines := strings.Split(body, "\n")
	rows := m.viewRows()
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	var b strings.Builder
	b.WriteString(m.renderTopbar())
	for _, l := range lines {
		b.WriteByte('\n')
		b.WriteString(l)
	}
	b.WriteByte('\n')
	b.WriteString(fit(helpStyle.Render("  "+m.help.ShortHelpView(m.keys.ShortHelp())), m.cols()))
	return b.String()
}
