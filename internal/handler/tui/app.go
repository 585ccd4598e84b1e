package tui

import (
	"TUI_playlist_sorter/internal/core/domain"
	"TUI_playlist_sorter/internal/core/ports"
	"TUI_playlist_sorter/internal/core/usecases"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type currentView int

const (
	viewWelcome currentView = iota
	viewLogin
	viewChannel
	viewPlaylists
	viewReorder
)

// Options tunes the TUI.
type Options struct {
	RefreshCooldown time.Duration
	// OpenURL opens a link in the system browser.
	OpenURL func(url string) error
	// InitialChannel prefills the channel view.
	InitialChannel string
	// ServiceURL is shown while the remote login runs.
	ServiceURL string
}

// Deps are the process-wide objects the views share.
type Deps struct {
	Session *usecases.SessionManager
	Browser *usecases.PlaylistBrowser
	Engine  *usecases.SortEngine
	Theme   *usecases.ThemeStore
	Alerts  *AlertBox
	Logger  ports.LoggerPort
}

type AppModel struct {
	// Dependências injetadas
	session *usecases.SessionManager
	browser *usecases.PlaylistBrowser
	engine  *usecases.SortEngine
	theme   *usecases.ThemeStore
	alerts  *AlertBox
	logger  ports.LoggerPort
	opts    Options

	styles styles
	keys   keyMap
	help   help.Model

	welcomeModel   *WelcomeModel
	loginModel     *LoginModel
	channelModel   *ChannelModel
	playlistsModel *PlaylistsModel
	reorderModel   *ReorderModel

	currentView currentView
	loggingOut  bool

	appContext context.Context
	cancelApp  context.CancelFunc

	width  int
	height int
}

func NewAppModel(deps Deps, opts Options) *AppModel {
	if opts.RefreshCooldown <= 0 {
		opts.RefreshCooldown = 30 * time.Second
	}
	if opts.OpenURL == nil {
		opts.OpenURL = func(string) error { return fmt.Errorf("no browser configured") }
	}

	appCtx, cancel := context.WithCancel(context.Background())

	theme := deps.Theme.Theme()
	m := &AppModel{
		session: deps.Session,
		browser: deps.Browser,
		engine:  deps.Engine,
		theme:   deps.Theme,
		alerts:  deps.Alerts,
		logger:  deps.Logger,
		opts:    opts,

		styles: newStyles(theme),
		keys:   defaultKeyMap(),
		help:   newHelp(theme),

		appContext: appCtx,
		cancelApp:  cancel,
	}

	m.welcomeModel = NewWelcomeModel(m)
	m.loginModel = NewLoginModel(m)
	m.channelModel = NewChannelModel(m, opts.InitialChannel)
	m.playlistsModel = NewPlaylistsModel(m, "", "")
	m.reorderModel = NewReorderModel(m, domain.Selection{})

	m.currentView = viewWelcome
	return m
}

type sessionCheckedMsg struct{ state domain.SessionState }
type logoutDoneMsg struct{}

// Init checks the session once; the welcome view shows a spinner meanwhile.
func (m *AppModel) Init() tea.Cmd {
	session := m.session
	ctx := m.appContext
	return tea.Batch(
		m.welcomeModel.Init(),
		func() tea.Msg {
			return sessionCheckedMsg{state: session.CheckSession(ctx)}
		},
	)
}

// Mensagens de navegação que os sub-modelos usam
type showWelcomeMsg struct{}
type showLoginMsg struct{}
type showChannelMsg struct{}
type showPlaylistsMsg struct {
	channelID string
	createdID string
}
type showReorderMsg struct{ selection domain.Selection }

func (m *AppModel) send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// requiresSession reports whether v is only reachable with a live session.
func requiresSession(v currentView) bool {
	return v == viewChannel || v == viewPlaylists || v == viewReorder
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.logger.Info("Ctrl+C pressed, quitting.")
			m.cancelApp()
			return m, tea.Quit
		}

		// An open alert swallows the next key, like a modal dialog.
		if _, ok := m.alerts.Current(); ok {
			m.alerts.Dismiss()
			return m, nil
		}

		// ctrl+t is a chord, never text, so it works while an input has focus.
		if key.Matches(msg, m.keys.ToggleTheme) {
			m.toggleTheme()
			return m, nil
		}

		if key.Matches(msg, m.keys.Logout) && m.session.IsAuthenticated() && !m.loggingOut {
			m.loggingOut = true
			return m, m.logoutCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case sessionCheckedMsg:
		if msg.state == domain.SessionAuthenticated && m.currentView == viewWelcome {
			return m, m.send(showChannelMsg{})
		}

	case logoutDoneMsg:
		m.loggingOut = false
		return m, m.send(showWelcomeMsg{})
	}

	// Navigation
	switch msg := msg.(type) {
	case showWelcomeMsg:
		m.currentView = viewWelcome
		cmds = append(cmds, m.welcomeModel.Init())

	case showLoginMsg:
		m.currentView = viewLogin
		cmds = append(cmds, m.loginModel.Init())

	case showChannelMsg:
		if !m.session.IsAuthenticated() {
			return m, m.send(showWelcomeMsg{})
		}
		m.currentView = viewChannel
		cmds = append(cmds, m.channelModel.Init())

	case showPlaylistsMsg:
		if !m.session.IsAuthenticated() {
			return m, m.send(showWelcomeMsg{})
		}
		m.currentView = viewPlaylists
		pm := NewPlaylistsModel(m, msg.channelID, msg.createdID)
		m.playlistsModel = pm
		cmds = append(cmds, pm.Init())

	case showReorderMsg:
		if !m.session.IsAuthenticated() {
			return m, m.send(showWelcomeMsg{})
		}
		m.currentView = viewReorder
		rm := NewReorderModel(m, msg.selection)
		m.reorderModel = rm
		cmds = append(cmds, rm.Init())
	}

	if requiresSession(m.currentView) && !m.session.IsAuthenticated() && !m.loggingOut {
		m.currentView = viewWelcome
		cmds = append(cmds, m.welcomeModel.Init())
	}

	// Agora delegamos o Update ao submodel correto, de acordo com a tela atual
	var currentViewCmd tea.Cmd
	switch m.currentView {
	case viewWelcome:
		_, currentViewCmd = m.welcomeModel.Update(msg)
	case viewLogin:
		_, currentViewCmd = m.loginModel.Update(msg)
	case viewChannel:
		_, currentViewCmd = m.channelModel.Update(msg)
	case viewPlaylists:
		_, currentViewCmd = m.playlistsModel.Update(msg)
	case viewReorder:
		_, currentViewCmd = m.reorderModel.Update(msg)
	}

	cmds = append(cmds, currentViewCmd)
	return m, tea.Batch(cmds...)
}

func (m *AppModel) toggleTheme() {
	theme, err := m.theme.Toggle()
	if err != nil {
		m.logger.Error("Theme preference not saved", err)
	}
	m.styles = newStyles(theme)
	m.help = newHelp(theme)
	m.help.Width = m.width
}

func (m *AppModel) logoutCmd() tea.Cmd {
	session := m.session
	ctx := m.appContext
	return func() tea.Msg {
		session.Logout(ctx)
		return logoutDoneMsg{}
	}
}

func (m *AppModel) View() string {
	var body string
	switch m.currentView {
	case viewWelcome:
		body = m.welcomeModel.View()
	case viewLogin:
		body = m.loginModel.View()
	case viewChannel:
		body = m.channelModel.View()
	case viewPlaylists:
		body = m.playlistsModel.View()
	case viewReorder:
		body = m.reorderModel.View()
	default:
		body = "Unknown view…"
	}

	if alert, ok := m.alerts.Current(); ok {
		box := m.styles.alert.Render(alert + "\n\n" + m.styles.prompt.Render("Press any key to continue"))
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
		}
		return m.styles.doc.Render(box)
	}

	return body
}

// header renders the app title line with the session and theme badges.
func (m *AppModel) header() string {
	title := m.styles.title.Render("Playlist Sorter")
	mode := m.styles.badge.Render(m.theme.Theme().Mode())
	session := m.styles.meta.Render(m.session.State().String())
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", mode, "  ", session)
}

func (m *AppModel) globalHelp() string {
	bindings := []key.Binding{m.keys.ToggleTheme, m.keys.Quit}
	if m.session.IsAuthenticated() {
		bindings = append([]key.Binding{m.keys.Logout}, bindings...)
	}
	return m.help.ShortHelpView(bindings)
}
