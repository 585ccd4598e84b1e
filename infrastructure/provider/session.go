package provider

import (
	"TUI_playlist_sorter/internal/core/domain"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type authResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// VerifySession calls a protected endpoint; any failure means the session is
// not usable.
func (s *SorterProvider) VerifySession(ctx context.Context) error {
	status, body, err := s.do(ctx, http.MethodGet, s.sessionPath, nil, nil)
	if err != nil {
		return err
	}
	return checkStatus(status, body)
}

// Authenticate starts the remote OAuth handshake. The service answers once the
// user completed it in the browser it opened.
func (s *SorterProvider) Authenticate(ctx context.Context) error {
	status, body, err := s.doLong(ctx, http.MethodGet, "/api/auth", nil, nil)
	if err != nil {
		return err
	}

	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		if statusErr := checkStatus(status, body); statusErr != nil {
			return statusErr
		}
		return fmt.Errorf("error while decoding auth response: %w", err)
	}

	switch {
	case resp.Status == "success":
		return nil
	case resp.Error != "":
		return &domain.RemoteError{Kind: domain.ErrAuthFailed, Status: status, Message: resp.Error}
	default:
		return &domain.RemoteError{Kind: domain.ErrAuthFailed, Status: status, Message: "unexpected auth response"}
	}
}

// Logout asks the service to drop the session.
func (s *SorterProvider) Logout(ctx context.Context) error {
	status, body, err := s.do(ctx, http.MethodPost, "/api/logout", nil, struct{}{})
	if err != nil {
		return err
	}
	return checkStatus(status, body)
}
