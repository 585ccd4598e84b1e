package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotAuthenticated indicates the sorter service rejected the session
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAuthFailed indicates the remote login handshake failed
	ErrAuthFailed = errors.New("authentication failed")

	// ErrAPIRequest indicates a non-success response from the sorter service
	ErrAPIRequest = errors.New("API request failed")

	ErrEmptyChannelID    = errors.New("channel ID cannot be empty")
	ErrEmptyPlaylistID   = errors.New("playlist ID cannot be empty")
	ErrEmptyPlaylistName = errors.New("new playlist name cannot be empty")

	// ErrNoPlaylistCreated indicates the sort response carried no new playlist id
	ErrNoPlaylistCreated = errors.New("no playlist was created")

	// ErrStaleResponse indicates a load was superseded by a newer one
	ErrStaleResponse = errors.New("response superseded by a newer request")

	ErrInvalidSortField     = errors.New("invalid sort field")
	ErrInvalidSortDirection = errors.New("invalid sort direction")

	// ErrBusy indicates an operation of the same kind is already running
	ErrBusy = errors.New("operation already in progress")
)

// RemoteError carries the status and message reported by the sorter service.
type RemoteError struct {
	Kind    error
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v (status %d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("%v (status %d): %s", e.Kind, e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Kind
}
