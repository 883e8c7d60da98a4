package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/folio/internal/screen"
)

type screenItem struct {
	kind screen.Kind
}

func (i screenItem) Title() string       { return i.kind.Title() }
func (i screenItem) Description() string { return i.kind.Description() }
func (i screenItem) FilterValue() string { return i.kind.String() }

// indexModel is the screen index overlay.
type indexModel struct {
	list list.Model
}

func newIndex() indexModel {
	items := make([]list.Item, len(screen.All))
	for i, k := range screen.All {
		items[i] = screenItem{kind: k}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FF8C00"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FF8C00"})

	l := list.New(items, delegate, 80, 20)
	l.Title = "folio"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = headerStyle

	return indexModel{list: l}
}

func (m *indexModel) setSize(w, h int) {
	m.list.SetWidth(w)
	m.list.SetHeight(h)
}

func (m *indexModel) focus(k screen.Kind) {
	m.list.Select(int(k))
}

func (m indexModel) Update(msg tea.Msg) (indexModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(screenItem); ok {
				kind := item.kind
				return m, func() tea.Msg { return screenSelectedMsg{kind: kind} }
			}
		case "esc", "q", "i":
			return m, func() tea.Msg { return indexClosedMsg{} }
		case "ctrl+c":
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m indexModel) View() string {
	return m.list.View()
}
