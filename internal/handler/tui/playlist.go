package tui

import (
	"TUI_playlist_sorter/internal/core/domain"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const playlistURLPrefix = "https://www.youtube.com/playlist?list="

type playlistsFetchedMsg struct{ err error }

type PlaylistsModel struct {
	parent    *AppModel
	channelID string
	createdID string

	spinner   spinner.Model
	filter    textinput.Model
	filtering bool

	cursor        int
	err           error
	loading       bool
	lastRefresh   time.Time
	statusMessage string
}

func NewPlaylistsModel(parent *AppModel, channelID, createdID string) *PlaylistsModel {
	fi := textinput.New()
	fi.Prompt = "/ "
	fi.Placeholder = "filter by title"
	fi.CharLimit = 100

	return &PlaylistsModel{
		parent:    parent,
		channelID: channelID,
		createdID: createdID,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		filter:    fi,
		loading:   true,
	}
}

func (m *PlaylistsModel) Init() tea.Cmd {
	m.loading = true
	m.err = nil
	m.statusMessage = ""
	m.parent.logger.Info("PlaylistsModel: fetching playlists", "channel_id", m.channelID)

	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m *PlaylistsModel) fetch() tea.Cmd {
	browser := m.parent.browser
	ctx := m.parent.appContext
	channelID := m.channelID
	return func() tea.Msg {
		return playlistsFetchedMsg{err: browser.FetchPlaylists(ctx, channelID)}
	}
}

// visible is the playlist list after the title filter. Playlists of another
// channel, kept after a failed fetch, are not shown.
func (m *PlaylistsModel) visible() []domain.PlaylistSummary {
	if m.parent.browser.ChannelID() != m.channelID {
		return nil
	}
	return m.parent.browser.Filter(m.filter.Value())
}

func (m *PlaylistsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case playlistsFetchedMsg:
		if errors.Is(msg.err, domain.ErrStaleResponse) {
			return m, nil
		}
		m.loading = false
		m.lastRefresh = time.Now()
		m.err = msg.err
		if msg.err == nil && len(m.parent.browser.Playlists()) == 0 {
			m.statusMessage = "No playlists found for this channel."
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *PlaylistsModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.parent.keys.Enter):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case key.Matches(msg, m.parent.keys.Back):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m *PlaylistsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.parent.keys

	switch {
	case key.Matches(msg, keys.Back):
		return m, m.parent.send(showChannelMsg{})

	case key.Matches(msg, keys.Refresh):
		cooldown := m.parent.opts.RefreshCooldown
		if m.loading {
			return m, nil
		}
		if !m.lastRefresh.IsZero() && time.Since(m.lastRefresh) < cooldown {
			remaining := cooldown - time.Since(m.lastRefresh)
			m.statusMessage = fmt.Sprintf("Wait %ds before reloading.", int(remaining.Seconds())+1)
			return m, nil
		}
		m.parent.logger.Info("PlaylistsModel: reload requested")
		m.loading = true
		m.statusMessage = ""
		return m, tea.Batch(m.spinner.Tick, m.fetch())

	case key.Matches(msg, keys.OpenCreated):
		if m.createdID == "" {
			return m, nil
		}
		link := playlistURLPrefix + m.createdID
		if err := m.parent.opts.OpenURL(link); err != nil {
			m.parent.logger.Error("Failed to open browser", err, "url", link)
			m.statusMessage = "Could not open the browser: " + link
		}
		return m, nil
	}

	if m.loading {
		return m, nil
	}

	playlists := m.visible()
	switch {
	case key.Matches(msg, keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(playlists)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Enter):
		if len(playlists) == 0 {
			return m, nil
		}
		selection := m.parent.browser.SelectPlaylist(playlists[m.cursor])
		m.parent.logger.Info("Playlist selected", "playlist_id", selection.Playlist.ID, "title", selection.Playlist.Title)
		return m, m.parent.send(showReorderMsg{selection: selection})
	}
	return m, nil
}

func (m *PlaylistsModel) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *PlaylistsModel) View() string {
	s := m.parent.styles
	keys := m.parent.keys
	var b strings.Builder

	b.WriteString(m.parent.header())
	b.WriteString("\n\n")
	b.WriteString(s.listHeader.Render(fmt.Sprintf("Playlists of %s", m.channelID)))
	b.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading playlists…\n")
	}

	if m.err != nil {
		b.WriteString(s.errorMessage.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	playlists := m.visible()
	start, end := window(len(playlists), m.cursor, m.listHeight())
	for i := start; i < end; i++ {
		p := playlists[i]
		line := fmt.Sprintf("%s %s", p.Title, s.meta.Render(fmt.Sprintf("(%d videos)", p.ItemCount)))
		if i == m.cursor {
			b.WriteString(s.selectedItem.Render(line))
		} else {
			b.WriteString(s.listItem.Render(line))
		}
		b.WriteString("\n")
	}

	if m.createdID != "" {
		b.WriteString("\n")
		b.WriteString(s.url.Render(playlistURLPrefix + m.createdID))
		b.WriteString("\n")
	}

	if m.statusMessage != "" {
		b.WriteString("\n")
		b.WriteString(s.statusMessage.Render(m.statusMessage))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	bindings := []key.Binding{keys.Up, keys.Down, keys.Enter, keys.Filter, keys.Refresh, keys.Back}
	if m.createdID != "" {
		bindings = append(bindings, keys.OpenCreated)
	}
	b.WriteString(m.parent.help.ShortHelpView(bindings))
	b.WriteString("\n")
	b.WriteString(m.parent.globalHelp())

	return s.doc.Render(b.String())
}

func (m *PlaylistsModel) listHeight() int {
	if m.parent.height <= 0 {
		return 15
	}
	return max(m.parent.height-14, 3)
}

// window returns the [start, end) slice of n rows of height h that keeps
// cursor visible.
func window(n, cursor, h int) (int, int) {
	if h <= 0 || n <= h {
		return 0, n
	}
	start := cursor - h/2
	if start < 0 {
		start = 0
	}
	if start+h > n {
		start = n - h
	}
	return start, start + h
}
