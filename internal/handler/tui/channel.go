package tui

import (
	"TUI_playlist_sorter/internal/core/domain"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ChannelModel asks for the channel whose playlists should be listed.
type ChannelModel struct {
	parent *AppModel
	input  textinput.Model
	err    error
}

func NewChannelModel(parent *AppModel, initial string) *ChannelModel {
	ti := textinput.New()
	ti.Placeholder = "UCxxxxxxxxxxxxxxxxxxxxxx or https://www.youtube.com/channel/UC…"
	ti.CharLimit = 256
	ti.Width = 60
	ti.SetValue(initial)

	return &ChannelModel{
		parent: parent,
		input:  ti,
	}
}

func (m *ChannelModel) Init() tea.Cmd {
	m.err = nil
	if current := m.parent.browser.ChannelID(); current != "" {
		m.input.SetValue(current)
	}
	return m.input.Focus()
}

func (m *ChannelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.parent.keys.Enter):
			channelID, err := ParseChannelInput(m.input.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.input.Blur()
			return m, m.parent.send(showPlaylistsMsg{channelID: channelID})

		case key.Matches(msg, m.parent.keys.Back):
			m.input.SetValue("")
			m.err = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChannelModel) View() string {
	s := m.parent.styles
	var b strings.Builder

	b.WriteString(m.parent.header())
	b.WriteString("\n\n")
	b.WriteString(s.listHeader.Render("YouTube Channel ID"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(s.prompt.Render("Enter the YouTube channel ID (or channel URL) to fetch playlists."))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(s.errorMessage.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.parent.help.ShortHelpView([]key.Binding{
		m.parent.keys.Enter,
		m.parent.keys.Logout,
		m.parent.keys.Quit,
	}))

	return s.doc.Render(b.String())
}

// ParseChannelInput accepts a bare channel id or a URL whose path contains
// /channel/<id>.
func ParseChannelInput(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.ErrEmptyChannelID
	}

	if !strings.Contains(raw, "/") {
		return raw, nil
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("error in parsing channel url: %w", err)
	}

	if id := parsed.Query().Get("channel_id"); id != "" {
		return id, nil
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i := 0; i < len(segments)-1; i++ {
		if segments[i] == "channel" && segments[i+1] != "" {
			return segments[i+1], nil
		}
	}

	return "", fmt.Errorf("no channel id in %q, use a /channel/<id> URL", raw)
}
