package tui

import (
	"TUI_playlist_sorter/internal/core/domain"
	"TUI_playlist_sorter/internal/core/usecases"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type itemsLoadedMsg struct{ err error }

type submitDoneMsg struct {
	createdID string
	err       error
}

// ReorderModel shows the items of the selected playlist and lets the user
// sort them by a field or move them by hand before creating the copy.
type ReorderModel struct {
	parent    *AppModel
	selection domain.Selection

	spinner spinner.Model
	busy    bool
	cursor  int

	// Set from Enter on the name input until submitDoneMsg arrives.
	submitting bool

	// Manual move in progress: carryFrom is the grabbed index.
	carrying  bool
	carryFrom int

	// Campos para entrada de título
	naming bool
	name   textinput.Model

	statusMessage string
	err           error
}

func NewReorderModel(parent *AppModel, selection domain.Selection) *ReorderModel {
	ni := textinput.New()
	ni.Placeholder = "Name of the new playlist"
	ni.CharLimit = 150
	ni.Width = 50
	if selection.Playlist.Title != "" {
		ni.SetValue(selection.Playlist.Title + " (sorted)")
	}

	return &ReorderModel{
		parent:    parent,
		selection: selection,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		name:      ni,
	}
}

func (m *ReorderModel) Init() tea.Cmd {
	m.statusMessage = ""
	m.err = nil
	m.cursor = 0
	m.carrying = false
	m.busy = true
	m.parent.logger.Info("ReorderModel: loading items", "playlist_id", m.selection.Playlist.ID)

	engine := m.parent.engine
	ctx := m.parent.appContext
	playlist := m.selection.Playlist
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return itemsLoadedMsg{err: engine.LoadItems(ctx, playlist)}
		},
	)
}

func (m *ReorderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case itemsLoadedMsg:
		if errors.Is(msg.err, domain.ErrStaleResponse) {
			return m, nil
		}
		m.busy = false
		m.err = msg.err
		m.cursor = 0
		return m, nil

	case submitDoneMsg:
		m.busy = false
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.parent.send(showPlaylistsMsg{
			channelID: m.selection.ChannelID,
			createdID: msg.createdID,
		})

	case tea.KeyMsg:
		// Enquanto a requisição estiver em andamento, não aceitamos input
		if m.submitting {
			return m, nil
		}
		if m.naming {
			return m.updateName(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *ReorderModel) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.parent.keys.Back):
		m.naming = false
		m.name.Blur()
		m.err = nil
		return m, nil

	case key.Matches(msg, m.parent.keys.Enter):
		name := m.name.Value()
		if strings.TrimSpace(name) == "" {
			m.err = domain.ErrEmptyPlaylistName
			return m, nil
		}
		m.naming = false
		m.name.Blur()
		m.err = nil
		m.statusMessage = fmt.Sprintf("Creating playlist %q…", strings.TrimSpace(name))
		m.busy = true
		m.submitting = true

		engine := m.parent.engine
		ctx := m.parent.appContext
		return m, tea.Batch(
			m.spinner.Tick,
			func() tea.Msg {
				id, err := engine.Submit(ctx, name)
				return submitDoneMsg{createdID: id, err: err}
			},
		)
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m *ReorderModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.parent.keys
	engine := m.parent.engine

	if key.Matches(msg, keys.Back) {
		if m.carrying {
			engine.ReorderManually(m.carryFrom, usecases.NoDestination)
			m.carrying = false
			m.cursor = m.carryFrom
			return m, nil
		}
		return m, m.parent.send(showPlaylistsMsg{channelID: m.selection.ChannelID})
	}

	if m.busy {
		return m, nil
	}

	n := len(engine.Items())
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.CycleField):
		m.carrying = false
		m.sortErr(engine.CycleField())

	case key.Matches(msg, keys.FlipOrder):
		m.carrying = false
		m.sortErr(engine.FlipDirection())

	case key.Matches(msg, keys.Grab):
		if n == 0 {
			return m, nil
		}
		if !m.carrying {
			m.carrying = true
			m.carryFrom = m.cursor
			return m, nil
		}
		m.carrying = false
		engine.ReorderManually(m.carryFrom, m.cursor)

	case key.Matches(msg, keys.MoveUp):
		if m.cursor > 0 && engine.ReorderManually(m.cursor, m.cursor-1) {
			m.cursor--
		}

	case key.Matches(msg, keys.MoveDown):
		if engine.ReorderManually(m.cursor, m.cursor+1) {
			m.cursor++
		}

	case key.Matches(msg, keys.Name), key.Matches(msg, keys.Enter):
		m.carrying = false
		m.naming = true
		m.err = nil
		m.statusMessage = ""
		return m, m.name.Focus()
	}
	return m, nil
}

func (m *ReorderModel) sortErr(err error) {
	if err != nil {
		m.parent.logger.Error("Sort failed", err)
		m.err = err
		return
	}
	m.err = nil
	m.cursor = 0
}

func (m *ReorderModel) View() string {
	s := m.parent.styles
	keys := m.parent.keys
	engine := m.parent.engine
	var b strings.Builder

	b.WriteString(m.parent.header())
	b.WriteString("\n\n")
	b.WriteString(s.listHeader.Render(fmt.Sprintf("Sort Playlist: %s", m.selection.Playlist.Title)))
	b.WriteString("\n")

	spec := engine.SortSpec()
	order := fmt.Sprintf("Sort by: %s  Order: %s", spec.Field, spec.Direction)
	if engine.IsManual() {
		order = s.meta.Render(order) + "  " + s.badge.Render("manual order")
	}
	b.WriteString(order)
	b.WriteString("\n\n")

	if m.busy && !m.submitting {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading videos…\n")
		return s.doc.Render(b.String())
	}

	if m.submitting {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(s.statusMessage.Render(m.statusMessage))
		b.WriteString("\n")
		return s.doc.Render(b.String())
	}

	items := engine.Items()
	if len(items) == 0 && m.err == nil {
		b.WriteString(s.prompt.Render("This playlist has no videos."))
		b.WriteString("\n")
	}

	start, end := window(len(items), m.cursor, m.listHeight())
	for i := start; i < end; i++ {
		b.WriteString(m.renderItem(i, items[i]))
		b.WriteString("\n")
	}

	if m.naming {
		b.WriteString("\n")
		b.WriteString(s.prompt.Render("Name the new playlist and press Enter:"))
		b.WriteString("\n")
		b.WriteString(m.name.View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(s.errorMessage.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.naming {
		b.WriteString(m.parent.help.ShortHelpView([]key.Binding{keys.Enter, keys.Back}))
	} else {
		b.WriteString(m.parent.help.ShortHelpView([]key.Binding{
			keys.Up, keys.Down, keys.CycleField, keys.FlipOrder,
			keys.Grab, keys.MoveUp, keys.MoveDown, keys.Name, keys.Back,
		}))
		b.WriteString("\n")
		b.WriteString(m.parent.globalHelp())
	}

	return s.doc.Render(b.String())
}

func (m *ReorderModel) renderItem(i int, item domain.PlaylistItem) string {
	s := m.parent.styles

	published := "unknown date"
	if t := item.PublishedTime(); t.Unix() != 0 {
		published = t.Format("2006-01-02")
	}
	line := fmt.Sprintf("%3d. %s %s", i+1, item.Title,
		s.meta.Render(fmt.Sprintf("· %s · %s", item.ChannelTitle, published)))

	switch {
	case m.carrying && i == m.cursor:
		return s.carriedItem.Render(line)
	case i == m.cursor:
		return s.selectedItem.Render(line)
	}
	return s.listItem.Render(line)
}

func (m *ReorderModel) listHeight() int {
	if m.parent.height <= 0 {
		return 15
	}
	return max(m.parent.height-16, 3)
}
