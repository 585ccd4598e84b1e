// package testing contains shared testing utilities
package testing

import (
	"TUI_playlist_sorter/internal/core/domain"
	"context"
	"strconv"
	"sync"
)

// MockSorterAPI is a test double for [ports.SorterAPIPort]. Nil funcs
// succeed with zero values. Every call is counted.
type MockSorterAPI struct {
	VerifyFn       func(ctx context.Context) error
	AuthenticateFn func(ctx context.Context) error
	LogoutFn       func(ctx context.Context) error
	PlaylistsFn    func(ctx context.Context, channelID string) ([]domain.PlaylistSummary, error)
	ItemsFn        func(ctx context.Context, playlistID string) ([]domain.PlaylistItem, error)
	CreateSortedFn func(ctx context.Context, req domain.SortRequest) (string, error)

	mu       sync.Mutex
	Calls    map[string]int
	Requests []domain.SortRequest
}

func (m *MockSorterAPI) count(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[name]++
}

// CallCount returns how often name was called.
func (m *MockSorterAPI) CallCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[name]
}

// LastRequest returns the last sort request sent, if any.
func (m *MockSorterAPI) LastRequest() (domain.SortRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return domain.SortRequest{}, false
	}
	return m.Requests[len(m.Requests)-1], true
}

func (m *MockSorterAPI) VerifySession(ctx context.Context) error {
	m.count("VerifySession")
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx)
	}
	return nil
}

func (m *MockSorterAPI) Authenticate(ctx context.Context) error {
	m.count("Authenticate")
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx)
	}
	return nil
}

func (m *MockSorterAPI) Logout(ctx context.Context) error {
	m.count("Logout")
	if m.LogoutFn != nil {
		return m.LogoutFn(ctx)
	}
	return nil
}

func (m *MockSorterAPI) ListPlaylists(ctx context.Context, channelID string) ([]domain.PlaylistSummary, error) {
	m.count("ListPlaylists")
	if m.PlaylistsFn != nil {
		return m.PlaylistsFn(ctx, channelID)
	}
	return nil, nil
}

func (m *MockSorterAPI) ListPlaylistItems(ctx context.Context, playlistID string) ([]domain.PlaylistItem, error) {
	m.count("ListPlaylistItems")
	if m.ItemsFn != nil {
		return m.ItemsFn(ctx, playlistID)
	}
	return nil, nil
}

func (m *MockSorterAPI) CreateSortedPlaylist(ctx context.Context, req domain.SortRequest) (string, error) {
	m.count("CreateSortedPlaylist")
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()
	if m.CreateSortedFn != nil {
		return m.CreateSortedFn(ctx, req)
	}
	return "", nil
}

// AlertRecorder collects alerts for assertions.
type AlertRecorder struct {
	mu       sync.Mutex
	Messages []string
}

func (a *AlertRecorder) Alert(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Messages = append(a.Messages, msg)
}

// All returns a copy of the recorded alerts.
func (a *AlertRecorder) All() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.Messages...)
}

// MemoryPrefs is an in-memory [ports.PreferencePort]. PutErr, when set, is
// returned by every Put and nothing is stored.
type MemoryPrefs struct {
	mu     sync.Mutex
	values map[string][]byte
	PutErr error
}

func NewMemoryPrefs() *MemoryPrefs {
	return &MemoryPrefs{values: make(map[string][]byte)}
}

func (p *MemoryPrefs) Get(key string) ([]byte, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.values[key]
	return v, ok, nil
}

func (p *MemoryPrefs) Put(key string, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.PutErr != nil {
		return p.PutErr
	}
	p.values[key] = append([]byte(nil), value...)
	return nil
}

// Items builds playlist items from titles, ids are "i0", "i1", ...
func Items(titles ...string) []domain.PlaylistItem {
	items := make([]domain.PlaylistItem, len(titles))
	for i, title := range titles {
		items[i] = domain.PlaylistItem{
			ID:      "i" + strconv.Itoa(i),
			VideoID: "v" + strconv.Itoa(i),
			Title:   title,
		}
	}
	return items
}
