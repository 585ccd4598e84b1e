package usecases

import (
	"TUI_playlist_sorter/internal/core/domain"
	"context"
	"errors"
)

// Login runs the remote auth handshake. Failures raise an alert and leave
// the session unauthenticated.
func (s *SessionManager) Login(ctx context.Context) domain.SessionState {
	s.log.Info("Init Login")
	s.setLoading(true)
	defer s.setLoading(false)

	err := s.api.Authenticate(ctx)
	if err != nil {
		s.log.Error("Login failed", err)
		s.setState(domain.SessionUnauthenticated)
		s.alerts.Alert(loginFailureMessage(err))
		return domain.SessionUnauthenticated
	}

	s.setState(domain.SessionAuthenticated)
	s.log.Info("Login completed")

	return domain.SessionAuthenticated
}

func loginFailureMessage(err error) string {
	var remote *domain.RemoteError
	if errors.As(err, &remote) && errors.Is(err, domain.ErrAuthFailed) && remote.Message != "" {
		return "Login failed: " + remote.Message
	}
	return "Login failed. Please try again."
}
