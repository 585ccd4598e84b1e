package usecases

import (
	"TUI_playlist_sorter/internal/core/domain"
	"context"
)

// Logout asks the service to end the session. The local state is reset even
// when the request fails.
func (s *SessionManager) Logout(ctx context.Context) {
	s.log.Info("Init Logout")
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.api.Logout(ctx); err != nil {
		s.log.Error("Error logging out", err)
	}

	s.setState(domain.SessionUnauthenticated)
	s.log.Info("Logout completed")
}
