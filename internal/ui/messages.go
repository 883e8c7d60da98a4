package ui

import (
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/media"
	"github.com/olivier-w/folio/internal/raster"
	"github.com/olivier-w/folio/internal/screen"
)

// ConfigReloadedMsg carries a reloaded feel configuration. It takes effect
// the next time a screen is activated.
type ConfigReloadedMsg struct {
	Config config.Config
}

type chromeTickMsg time.Time

type thumbLoadedMsg struct {
	epoch int
	key   raster.Key
	img   *image.RGBA
	err   error
}

type screenSelectedMsg struct {
	kind screen.Kind
}

type indexClosedMsg struct{}

func chromeTickCmd() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg {
		return chromeTickMsg(t)
	})
}

func loadThumbCmd(epoch int, k raster.Key, path string) tea.Cmd {
	return func() tea.Msg {
		img, err := media.Load(path, k.W, k.H)
		return thumbLoadedMsg{epoch: epoch, key: k, img: img, err: err}
	}
}
