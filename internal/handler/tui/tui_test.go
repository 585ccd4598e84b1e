package tui

import (
	"TUI_playlist_sorter/infrastructure/logger"
	"TUI_playlist_sorter/internal/core/domain"
	"TUI_playlist_sorter/internal/core/usecases"
	tu "TUI_playlist_sorter/internal/testing"
	"context"
	"errors"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
)

func TestParseChannelInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare id", "UCabc123", "UCabc123"},
		{"bare id with spaces", "  UCabc123 ", "UCabc123"},
		{"channel URL", "https://www.youtube.com/channel/UCabc123", "UCabc123"},
		{"channel URL with subpath", "https://www.youtube.com/channel/UCabc123/videos", "UCabc123"},
		{"URL without scheme", "youtube.com/channel/UCabc123", "UCabc123"},
		{"channel_id query", "https://www.youtube.com/feeds/videos.xml?channel_id=UCabc123", "UCabc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChannelInput(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	t.Run("empty input", func(t *testing.T) {
		if _, err := ParseChannelInput("   "); !errors.Is(err, domain.ErrEmptyChannelID) {
			t.Errorf("expected ErrEmptyChannelID, got %v", err)
		}
	})

	t.Run("URL without channel id", func(t *testing.T) {
		if _, err := ParseChannelInput("https://www.youtube.com/@someone"); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestAlertBox(t *testing.T) {
	a := NewAlertBox()
	if _, ok := a.Current(); ok {
		t.Fatal("expected no alert")
	}

	a.Alert("first")
	a.Alert("second")

	if msg, ok := a.Current(); !ok || msg != "first" {
		t.Errorf("expected first, got %q", msg)
	}
	a.Dismiss()
	if msg, _ := a.Current(); msg != "second" {
		t.Errorf("expected second, got %q", msg)
	}
	a.Dismiss()
	a.Dismiss()
	if _, ok := a.Current(); ok {
		t.Error("expected empty queue")
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		n, cursor, h int
		start, end   int
	}{
		{5, 0, 10, 0, 5},
		{20, 0, 5, 0, 5},
		{20, 10, 5, 8, 13},
		{20, 19, 5, 15, 20},
	}
	for _, tt := range tests {
		start, end := window(tt.n, tt.cursor, tt.h)
		if start != tt.start || end != tt.end {
			t.Errorf("window(%d, %d, %d): expected [%d,%d), got [%d,%d)", tt.n, tt.cursor, tt.h, tt.start, tt.end, start, end)
		}
	}
}

func newTestApp(api *tu.MockSorterAPI) (*AppModel, *AlertBox, *tu.MemoryPrefs) {
	log := logger.Nop()
	alerts := NewAlertBox()
	prefs := tu.NewMemoryPrefs()
	m := NewAppModel(Deps{
		Session: usecases.NewSessionManager(api, alerts, log),
		Browser: usecases.NewPlaylistBrowser(api, log),
		Engine:  usecases.NewSortEngine(api, alerts, log, language.English),
		Theme:   usecases.NewThemeStore(prefs, log),
		Alerts:  alerts,
		Logger:  log,
	}, Options{})
	return m, alerts, prefs
}

func TestAppModel(t *testing.T) {
	t.Run("authenticated session goes to the channel view", func(t *testing.T) {
		m, _, _ := newTestApp(&tu.MockSorterAPI{})
		m.session.CheckSession(m.appContext)

		_, cmd := m.Update(sessionCheckedMsg{state: domain.SessionAuthenticated})
		if cmd == nil {
			t.Fatal("expected a navigation command")
		}
		m.Update(cmd())

		if m.currentView != viewChannel {
			t.Errorf("expected channel view, got %d", m.currentView)
		}
	})

	t.Run("protected views redirect to welcome without a session", func(t *testing.T) {
		m, _, _ := newTestApp(&tu.MockSorterAPI{VerifyFn: func(ctx context.Context) error {
			return domain.ErrNotAuthenticated
		}})
		m.session.CheckSession(m.appContext)

		_, cmd := m.Update(showPlaylistsMsg{channelID: "UC1"})
		if cmd == nil {
			t.Fatal("expected a redirect")
		}
		if _, ok := cmd().(showWelcomeMsg); !ok {
			t.Error("expected showWelcomeMsg")
		}
	})

	t.Run("ctrl+t toggles and persists the theme", func(t *testing.T) {
		m, _, prefs := newTestApp(&tu.MockSorterAPI{})

		m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

		if !m.theme.DarkMode() {
			t.Error("expected dark mode")
		}
		if raw, ok, _ := prefs.Get(usecases.DarkModeKey); !ok || string(raw) != "true" {
			t.Errorf("expected persisted true, got %q", raw)
		}
	})

	t.Run("ctrl+t toggles the theme on the channel view", func(t *testing.T) {
		m, _, _ := newTestApp(&tu.MockSorterAPI{})
		m.session.CheckSession(m.appContext)
		m.Update(showChannelMsg{})
		if m.currentView != viewChannel {
			t.Fatalf("expected channel view, got %d", m.currentView)
		}

		m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

		if !m.theme.DarkMode() {
			t.Error("expected dark mode")
		}
	})

	t.Run("an open alert swallows the next key", func(t *testing.T) {
		m, alerts, _ := newTestApp(&tu.MockSorterAPI{})
		alerts.Alert("Login failed. Please try again.")

		m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

		if _, ok := alerts.Current(); ok {
			t.Error("expected alert dismissed")
		}
		if m.theme.DarkMode() {
			t.Error("expected the key to be consumed by the alert")
		}
	})
}

func TestChannelModelPrefill(t *testing.T) {
	api := &tu.MockSorterAPI{PlaylistsFn: func(context.Context, string) ([]domain.PlaylistSummary, error) {
		return []domain.PlaylistSummary{{ID: "PL1"}}, nil
	}}
	m, _, _ := newTestApp(api)

	t.Run("empty flag leaves the input empty", func(t *testing.T) {
		m.channelModel.Init()
		if got := m.channelModel.input.Value(); got != "" {
			t.Errorf("expected empty input, got %q", got)
		}
	})

	t.Run("flag value prefills the input", func(t *testing.T) {
		c := NewChannelModel(m, "UCflag")
		c.Init()
		if got := c.input.Value(); got != "UCflag" {
			t.Errorf("expected UCflag, got %q", got)
		}
	})

	t.Run("last fetched channel wins on re-entry", func(t *testing.T) {
		if err := m.browser.FetchPlaylists(m.appContext, "UCbrowsed"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c := NewChannelModel(m, "UCflag")
		c.Init()
		if got := c.input.Value(); got != "UCbrowsed" {
			t.Errorf("expected UCbrowsed, got %q", got)
		}
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes cmd and any batch it expands to, returning every message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, runCmd(c)...)
	}
	return out
}

func TestReorderModel(t *testing.T) {
	newLoadedReorder := func(t *testing.T) (*ReorderModel, *AppModel, *tu.MockSorterAPI) {
		t.Helper()
		api := &tu.MockSorterAPI{
			ItemsFn: func(context.Context, string) ([]domain.PlaylistItem, error) {
				return tu.Items("a", "b", "c"), nil
			},
			CreateSortedFn: func(context.Context, domain.SortRequest) (string, error) {
				return "PLnew", nil
			},
		}
		app, _, _ := newTestApp(api)
		app.session.CheckSession(app.appContext)

		sel := domain.Selection{Playlist: domain.PlaylistSummary{ID: "PL1"}, ChannelID: "UC1"}
		m := NewReorderModel(app, sel)
		m.Init()
		if err := app.engine.LoadItems(app.appContext, sel.Playlist); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m.Update(itemsLoadedMsg{})
		if m.busy {
			t.Fatal("expected loading finished")
		}
		return m, app, api
	}

	t.Run("grab and drop moves the item", func(t *testing.T) {
		m, app, _ := newLoadedReorder(t)

		m.Update(runes(" "))
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m.Update(runes(" "))

		if ids := domain.ItemIDs(app.engine.Items()); !slices.Equal(ids, []string{"i1", "i2", "i0"}) {
			t.Errorf("expected [i1 i2 i0], got %v", ids)
		}
		if !app.engine.IsManual() {
			t.Error("expected manual order")
		}
		if m.carrying {
			t.Error("expected the item dropped")
		}
	})

	t.Run("esc while carrying cancels the move", func(t *testing.T) {
		m, app, _ := newLoadedReorder(t)

		m.Update(runes(" "))
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

		if cmd != nil {
			t.Error("expected esc to stay on the view while carrying")
		}
		if ids := domain.ItemIDs(app.engine.Items()); !slices.Equal(ids, []string{"i0", "i1", "i2"}) {
			t.Errorf("expected order unchanged, got %v", ids)
		}
		if app.engine.IsManual() || m.carrying || m.cursor != 0 {
			t.Errorf("expected cancelled move, carrying=%v cursor=%d", m.carrying, m.cursor)
		}
	})

	t.Run("shift move steps the item up", func(t *testing.T) {
		m, app, _ := newLoadedReorder(t)

		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m.Update(runes("K"))

		if ids := domain.ItemIDs(app.engine.Items()); !slices.Equal(ids, []string{"i1", "i0", "i2"}) {
			t.Errorf("expected [i1 i0 i2], got %v", ids)
		}
		if m.cursor != 0 {
			t.Errorf("expected cursor to follow the item, got %d", m.cursor)
		}
	})

	t.Run("naming then enter submits the current order", func(t *testing.T) {
		m, _, api := newLoadedReorder(t)
		m.Update(runes(" "))
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m.Update(runes(" "))

		m.Update(runes("n"))
		if !m.naming {
			t.Fatal("expected the name input")
		}
		m.Update(runes("Mine"))
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		if m.naming || !m.submitting {
			t.Fatalf("expected submitting, naming=%v submitting=%v", m.naming, m.submitting)
		}
		if _, next := m.Update(runes("s")); next != nil {
			t.Error("expected keys ignored while submitting")
		}

		var done *submitDoneMsg
		for _, msg := range runCmd(cmd) {
			if d, ok := msg.(submitDoneMsg); ok {
				done = &d
			}
		}
		if done == nil || done.err != nil || done.createdID != "PLnew" {
			t.Fatalf("expected a successful submit, got %+v", done)
		}

		req, _ := api.LastRequest()
		if req.NewPlaylistName != "Mine" || req.SortBy != domain.ManualSortKey || !slices.Equal(req.VideoIDs, []string{"v1", "v0", "v2"}) {
			t.Errorf("unexpected request %+v", req)
		}

		_, cmd = m.Update(*done)
		if m.submitting {
			t.Error("expected submitting cleared")
		}
		if next, ok := cmd().(showPlaylistsMsg); !ok || next.createdID != "PLnew" || next.channelID != "UC1" {
			t.Errorf("expected showPlaylistsMsg for the new playlist, got %+v", next)
		}
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		m, _, api := newLoadedReorder(t)

		m.Update(runes("n"))
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		if cmd != nil || !m.naming || !errors.Is(m.err, domain.ErrEmptyPlaylistName) {
			t.Errorf("expected the name input to stay with an error, got %v", m.err)
		}
		if api.CallCount("CreateSortedPlaylist") != 0 {
			t.Error("expected no request")
		}
	})
}
