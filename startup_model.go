package main

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/folio/internal/ui"
)

const introTitle = "folio"

type startupPhase uint8

const (
	phaseLoading startupPhase = iota
	phaseFailed
)

type startupResolvedMsg struct {
	result openResult
	err    error
}

type startupStatusMsg openStatus

type introTickMsg time.Time

// startupModel plays the intro while the portfolio loads, then hands the
// program over to the shell.
type startupModel struct {
	shell    ui.Options
	open     openOptions
	phase    startupPhase
	errMsg   string
	width    int
	height   int
	spinner  spinner.Model
	progress progress.Model
	status   openStatus
	statusCh chan openStatus

	// The intro reveals the title one letter at a time on a spring.
	intro     bool
	reveal    harmonica.Spring
	revealPos float64
	revealVel float64
	introDone bool
	result    *openResult
}

func newStartupModel(shell ui.Options, open openOptions, intro bool) startupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	p := progress.New(
		progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
		progress.WithoutPercentage(),
	)

	return startupModel{
		shell:     shell,
		open:      open,
		phase:     phaseLoading,
		spinner:   s,
		progress:  p,
		status:    openStatus{Label: "Opening...", Percent: 0},
		statusCh:  make(chan openStatus, 16),
		intro:     intro,
		reveal:    harmonica.NewSpring(harmonica.FPS(60), 4.0, 0.9),
		introDone: !intro,
	}
}

func (m startupModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.waitForStatus(), openPortfolioCmd(m.open, m.statusCh)}
	if m.intro {
		cmds = append(cmds, introTickCmd())
	}
	return tea.Batch(cmds...)
}

func introTickCmd() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg {
		return introTickMsg(t)
	})
}

func openPortfolioCmd(opts openOptions, statusCh chan openStatus) tea.Cmd {
	return func() tea.Msg {
		defer close(statusCh)
		res, err := openPortfolio(opts, func(s openStatus) {
			select {
			case statusCh <- s:
			default:
			}
		})
		return startupResolvedMsg{result: res, err: err}
	}
}

func (m startupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := msg.Width - 8
		if barWidth < 20 {
			barWidth = 20
		}
		if barWidth > 60 {
			barWidth = 60
		}
		m.progress.Width = barWidth
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.phase == phaseLoading {
			return m, cmd
		}
		return m, nil

	case introTickMsg:
		target := float64(len(introTitle))
		m.revealPos, m.revealVel = m.reveal.Update(m.revealPos, m.revealVel, target)
		if math.Abs(target-m.revealPos) < 0.05 && math.Abs(m.revealVel) < 0.05 {
			m.revealPos, m.revealVel = target, 0
			m.introDone = true
			return m.handOff()
		}
		return m, introTickCmd()

	case startupStatusMsg:
		m.status = openStatus(msg)
		return m, m.waitForStatus()

	case startupResolvedMsg:
		if msg.err != nil {
			m.phase = phaseFailed
			m.errMsg = msg.err.Error()
			m.statusCh = nil
			return m, nil
		}
		res := msg.result
		m.result = &res
		return m.handOff()

	case tea.KeyMsg:
		if startupIsQuit(msg) {
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		if m.phase == phaseLoading && m.intro && !m.introDone {
			// Any other key skips the intro.
			m.introDone = true
			m.revealPos = float64(len(introTitle))
			return m.handOff()
		}
	}

	return m, nil
}

// handOff switches to the shell once both the intro and loading are done.
func (m startupModel) handOff() (tea.Model, tea.Cmd) {
	if !m.introDone || m.result == nil {
		return m, nil
	}
	opts := m.shell
	opts.Gallery = m.result.Gallery
	opts.Clicker = m.result.Clicker
	shell := ui.New(opts)

	cmds := []tea.Cmd{shell.Init()}
	if m.width > 0 || m.height > 0 {
		w, h := m.width, m.height
		cmds = append(cmds, func() tea.Msg {
			return tea.WindowSizeMsg{Width: w, Height: h}
		})
	}
	return shell, tea.Batch(cmds...)
}

func (m startupModel) waitForStatus() tea.Cmd {
	if m.statusCh == nil {
		return nil
	}
	statusCh := m.statusCh
	return func() tea.Msg {
		status, ok := <-statusCh
		if !ok {
			return nil
		}
		return startupStatusMsg(status)
	}
}

func (m startupModel) View() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(startupHeaderStyle.Render(m.revealedTitle()))
	b.WriteString("\n\n")

	if m.phase == phaseFailed {
		b.WriteString("  ")
		b.WriteString(startupErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(startupStatusStyle.Render(m.status.Label))
		b.WriteString("\n  ")
		b.WriteString(m.progress.ViewAs(m.status.Percent))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(startupHelpStyle.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m startupModel) revealedTitle() string {
	if !m.intro || m.introDone {
		return introTitle
	}
	n := int(math.Floor(m.revealPos))
	n = max(0, min(n, len(introTitle)))
	return introTitle[:n] + strings.Repeat(" ", len(introTitle)-n)
}

func startupIsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

var (
	startupHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})
	startupStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})
	startupHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
	startupErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#A00000", Dark: "#FF8080"})
)
