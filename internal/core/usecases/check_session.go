package usecases

import (
	"TUI_playlist_sorter/internal/core/domain"
	"context"
)

// CheckSession requests a protected endpoint and records the outcome. Failures
// are silent: the session simply becomes unauthenticated.
func (s *SessionManager) CheckSession(ctx context.Context) domain.SessionState {
	err := s.api.VerifySession(ctx)

	state := domain.SessionAuthenticated
	if err != nil {
		s.log.Info("Session check failed, marking unauthenticated", "err", err)
		state = domain.SessionUnauthenticated
	}

	s.mu.Lock()
	s.state = state
	s.loading = false
	s.mu.Unlock()

	s.log.Info("Session checked", "state", state.String())

	return state
}
