package tui

import (
	"TUI_playlist_sorter/internal/core/domain"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// WelcomeModel is the gate shown while there is no authenticated session.
type WelcomeModel struct {
	parent  *AppModel
	spinner spinner.Model
}

func NewWelcomeModel(parent *AppModel) *WelcomeModel {
	return &WelcomeModel{
		parent:  parent,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.parent.session.State() != domain.SessionUnknown {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.parent.keys.Enter) && !m.parent.session.IsLoading() {
			return m, m.parent.send(showLoginMsg{})
		}
	}
	return m, nil
}

func (m *WelcomeModel) View() string {
	s := m.parent.styles
	var b strings.Builder

	b.WriteString(m.parent.header())
	b.WriteString("\n\n")

	if m.parent.session.State() == domain.SessionUnknown {
		b.WriteString(m.spinner.View())
		b.WriteString(" Checking session…")
		return s.doc.Render(b.String())
	}

	b.WriteString(s.listHeader.Render("Please login to continue"))
	b.WriteString("\n")
	b.WriteString(s.prompt.Render("You need to be logged in to access and sort playlists."))
	b.WriteString("\n\n")
	b.WriteString(s.prompt.Render("Press Enter to log in."))
	b.WriteString("\n\n")
	b.WriteString(m.parent.globalHelp())

	return s.doc.Render(b.String())
}
