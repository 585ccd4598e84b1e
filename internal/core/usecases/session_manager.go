package usecases

import (
	"TUI_playlist_sorter/internal/core/domain"
	"TUI_playlist_sorter/internal/core/ports"
	"sync"
)

// SessionManager tracks whether the sorter service accepts the current
// session. The session itself lives in the API adapter's cookie jar.
type SessionManager struct {
	api    ports.SorterAPIPort
	alerts ports.AlertPort
	log    ports.LoggerPort

	mu      sync.RWMutex
	state   domain.SessionState
	loading bool
}

func NewSessionManager(api ports.SorterAPIPort, alerts ports.AlertPort, logger ports.LoggerPort) *SessionManager {
	return &SessionManager{
		api:     api,
		alerts:  alerts,
		log:     logger,
		state:   domain.SessionUnknown,
		loading: true,
	}
}

func (s *SessionManager) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *SessionManager) IsAuthenticated() bool {
	return s.State() == domain.SessionAuthenticated
}

// IsLoading is true until the first CheckSession completes and while a
// login or logout is running.
func (s *SessionManager) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *SessionManager) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *SessionManager) setState(state domain.SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
