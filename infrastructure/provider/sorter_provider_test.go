package provider

import (
	"TUI_playlist_sorter/infrastructure/logger"
	"TUI_playlist_sorter/internal/core/domain"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"
)

func newTestProvider(t *testing.T, handler http.Handler) *SorterProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewSorterProvider(Config{BaseURL: server.URL, Timeout: 5 * time.Second}, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestNewSorterProvider(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := NewSorterProvider(Config{}, logger.Nop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.BaseURL() != defaultBaseURL {
			t.Errorf("expected %s, got %s", defaultBaseURL, p.BaseURL())
		}
		if p.timeout != defaultTimeout {
			t.Errorf("expected timeout %v, got %v", defaultTimeout, p.timeout)
		}
		if p.longTimeout != defaultLongTimeout {
			t.Errorf("expected long timeout %v, got %v", defaultLongTimeout, p.longTimeout)
		}
		if p.client.Jar == nil {
			t.Error("expected a cookie jar")
		}
	})

	t.Run("rejects a base URL without host", func(t *testing.T) {
		if _, err := NewSorterProvider(Config{BaseURL: "localhost"}, logger.Nop()); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestSorterProviderSession(t *testing.T) {
	ctx := context.Background()

	t.Run("session cookie is replayed", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/auth", func(w http.ResponseWriter, r *http.Request) {
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
			writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
		})
		mux.HandleFunc("/api/playlists", func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie("session"); err != nil || c.Value != "abc" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"items": []any{}})
		})
		p := newTestProvider(t, mux)

		err := p.VerifySession(ctx)
		if !errors.Is(err, domain.ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated before login, got %v", err)
		}
		var remote *domain.RemoteError
		if !errors.As(err, &remote) || remote.Status != http.StatusUnauthorized || remote.Message != "Not authenticated" {
			t.Errorf("unexpected remote error %+v", remote)
		}

		if err := p.Authenticate(ctx); err != nil {
			t.Fatalf("unexpected login error: %v", err)
		}
		if err := p.VerifySession(ctx); err != nil {
			t.Errorf("expected session after login, got %v", err)
		}
	})

	t.Run("auth error body", func(t *testing.T) {
		p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"error": "access_denied"})
		}))

		err := p.Authenticate(ctx)
		var remote *domain.RemoteError
		if !errors.As(err, &remote) || !errors.Is(err, domain.ErrAuthFailed) || remote.Message != "access_denied" {
			t.Errorf("expected auth failure with message, got %v", err)
		}
	})

	t.Run("logout posts", func(t *testing.T) {
		var method, path string
		p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method, path = r.Method, r.URL.Path
			writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
		}))

		if err := p.Logout(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if method != http.MethodPost || path != "/api/logout" {
			t.Errorf("expected POST /api/logout, got %s %s", method, path)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		p, _ := NewSorterProvider(Config{BaseURL: url, Timeout: time.Second}, logger.Nop())
		if err := p.VerifySession(ctx); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestSorterProviderPlaylists(t *testing.T) {
	ctx := context.Background()

	t.Run("ListPlaylists decodes playlist resources", func(t *testing.T) {
		p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/playlists" {
				t.Errorf("expected /api/playlists, got %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("channel_id"); got != "UC1" {
				t.Errorf("expected channel_id UC1, got %s", got)
			}
			if r.Header.Get(requestIDHeader) == "" {
				t.Error("expected a request id header")
			}
			w.Write([]byte(`{"items":[
				{"id":"PL1","snippet":{"title":"First","thumbnails":{"default":{"url":"http://img/1"}}},"contentDetails":{"itemCount":3}},
				{"id":"PL2","snippet":{"title":"Second"}}
			]}`))
		}))

		got, err := p.ListPlaylists(ctx, "UC1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []domain.PlaylistSummary{
			{ID: "PL1", Title: "First", ThumbnailURL: "http://img/1", ItemCount: 3},
			{ID: "PL2", Title: "Second"},
		}
		if !slices.Equal(got, want) {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("ListPlaylistItems decodes playlist item resources", func(t *testing.T) {
		p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("playlist_id"); got != "PL1" {
				t.Errorf("expected playlist_id PL1, got %s", got)
			}
			w.Write([]byte(`{"items":[
				{"id":"it1","snippet":{"title":"Song","videoOwnerChannelTitle":"Band","publishedAt":"2020-01-02T03:04:05Z","resourceId":{"videoId":"vid1"}}},
				{"id":"it2","snippet":{"title":"Other"},"contentDetails":{"videoId":"vid2"}}
			]}`))
		}))

		got, err := p.ListPlaylistItems(ctx, "PL1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []domain.PlaylistItem{
			{ID: "it1", VideoID: "vid1", Title: "Song", ChannelTitle: "Band", PublishedAt: "2020-01-02T03:04:05Z"},
			{ID: "it2", VideoID: "vid2", Title: "Other"},
		}
		if !slices.Equal(got, want) {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("server error maps to ErrAPIRequest", func(t *testing.T) {
		p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
		}))

		_, err := p.ListPlaylistItems(ctx, "PL1")
		if !errors.Is(err, domain.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("CreateSortedPlaylist sends the sort body", func(t *testing.T) {
		var body map[string]any
		p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/api/sort" {
				t.Errorf("expected POST /api/sort, got %s %s", r.Method, r.URL.Path)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected JSON content type, got %s", ct)
			}
			json.NewDecoder(r.Body).Decode(&body)
			writeJSON(w, http.StatusOK, map[string]string{"new_playlist_id": "PLnew", "message": "ok"})
		}))

		id, err := p.CreateSortedPlaylist(ctx, domain.SortRequest{
			PlaylistID:      "PL1",
			SortBy:          domain.ManualSortKey,
			Order:           domain.Ascending,
			NewPlaylistName: "Mine",
			CreatePlaylist:  true,
			VideoIDs:        []string{"v2", "v1"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "PLnew" {
			t.Errorf("expected PLnew, got %s", id)
		}

		if body["playlist_id"] != "PL1" || body["sort_by"] != "manual" || body["order"] != "asc" ||
			body["new_playlist_name"] != "Mine" || body["create_playlist"] != true {
			t.Errorf("unexpected body %v", body)
		}
		ids, _ := body["video_ids"].([]any)
		if len(ids) != 2 || ids[0] != "v2" || ids[1] != "v1" {
			t.Errorf("expected video_ids [v2 v1], got %v", body["video_ids"])
		}
	})

	t.Run("CreateSortedPlaylist omits video ids for automatic orders", func(t *testing.T) {
		var body map[string]any
		p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&body)
			writeJSON(w, http.StatusOK, map[string]string{"new_playlist_id": "PLnew"})
		}))

		p.CreateSortedPlaylist(ctx, domain.SortRequest{PlaylistID: "PL1", SortBy: "title", Order: domain.Descending, NewPlaylistName: "x", CreatePlaylist: true})

		if _, ok := body["video_ids"]; ok {
			t.Errorf("expected no video_ids, got %v", body["video_ids"])
		}
	})

	t.Run("CreateSortedPlaylist without new id fails", func(t *testing.T) {
		p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"error": "quota exceeded"})
		}))

		_, err := p.CreateSortedPlaylist(ctx, domain.SortRequest{PlaylistID: "PL1", NewPlaylistName: "x"})
		if !errors.Is(err, domain.ErrNoPlaylistCreated) {
			t.Errorf("expected ErrNoPlaylistCreated, got %v", err)
		}
	})
}

func TestSorterProviderTimeouts(t *testing.T) {
	ctx := context.Background()

	slowServer := func(t *testing.T, cfg Config) *SorterProvider {
		t.Helper()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
			switch r.URL.Path {
			case "/api/auth":
				writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
			case "/api/sort":
				writeJSON(w, http.StatusOK, map[string]string{"new_playlist_id": "PLnew"})
			default:
				writeJSON(w, http.StatusOK, map[string]any{"items": []any{}})
			}
		}))
		t.Cleanup(server.Close)

		cfg.BaseURL = server.URL
		p, err := NewSorterProvider(cfg, logger.Nop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return p
	}

	t.Run("short calls hit the regular timeout", func(t *testing.T) {
		p := slowServer(t, Config{Timeout: 100 * time.Millisecond})

		_, err := p.ListPlaylists(ctx, "UC1")
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected DeadlineExceeded, got %v", err)
		}
	})

	t.Run("login and sort outlive the regular timeout", func(t *testing.T) {
		p := slowServer(t, Config{Timeout: 100 * time.Millisecond})

		if err := p.Authenticate(ctx); err != nil {
			t.Errorf("unexpected login error: %v", err)
		}
		id, err := p.CreateSortedPlaylist(ctx, domain.SortRequest{PlaylistID: "PL1", SortBy: "title", NewPlaylistName: "x", CreatePlaylist: true})
		if err != nil || id != "PLnew" {
			t.Errorf("expected PLnew, got %q (%v)", id, err)
		}
	})

	t.Run("long timeout is configurable", func(t *testing.T) {
		p := slowServer(t, Config{Timeout: time.Second, LongTimeout: 100 * time.Millisecond})

		if err := p.Authenticate(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected DeadlineExceeded, got %v", err)
		}
	})

	t.Run("negative long timeout leaves the deadline to the caller", func(t *testing.T) {
		p := slowServer(t, Config{Timeout: 100 * time.Millisecond, LongTimeout: -1})
		if p.longTimeout >= 0 {
			t.Fatalf("expected negative long timeout kept, got %v", p.longTimeout)
		}

		if err := p.Authenticate(ctx); err != nil {
			t.Errorf("unexpected login error: %v", err)
		}

		callerCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		if err := p.Authenticate(callerCtx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected caller deadline, got %v", err)
		}
	})
}
