package tui

import (
	"TUI_playlist_sorter/internal/core/domain"
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type loginDoneMsg struct{ state domain.SessionState }

// LoginModel waits for the remote handshake. The sorter service opens the
// provider's consent page itself.
type LoginModel struct {
	parent  *AppModel
	spinner spinner.Model
	cancel  context.CancelFunc
}

func NewLoginModel(parent *AppModel) *LoginModel {
	return &LoginModel{
		parent:  parent,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	ctx, cancel := context.WithCancel(m.parent.appContext)
	m.cancel = cancel
	m.parent.logger.Info("LoginModel: starting remote login")

	session := m.parent.session
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			defer cancel()
			return loginDoneMsg{state: session.Login(ctx)}
		},
	)
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loginDoneMsg:
		m.cancel = nil
		if msg.state == domain.SessionAuthenticated {
			return m, m.parent.send(showChannelMsg{})
		}
		return m, m.parent.send(showWelcomeMsg{})

	case tea.KeyMsg:
		if key.Matches(msg, m.parent.keys.Back) && m.cancel != nil {
			m.parent.logger.Info("LoginModel: login cancelled by user")
			m.cancel()
		}
	}
	return m, nil
}

func (m *LoginModel) View() string {
	s := m.parent.styles
	var b strings.Builder

	b.WriteString(m.parent.header())
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View())
	b.WriteString(" Logging in…")
	b.WriteString("\n\n")
	b.WriteString(s.prompt.Render("Complete the sign-in in the browser window opened by the sorter service."))
	b.WriteString("\n")
	b.WriteString(s.url.Render(m.parent.opts.ServiceURL))
	b.WriteString("\n\n")
	b.WriteString(m.parent.help.ShortHelpView([]key.Binding{m.parent.keys.Back, m.parent.keys.Quit}))

	return s.doc.Render(b.String())
}
