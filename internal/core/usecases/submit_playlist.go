package usecases

import (
	"TUI_playlist_sorter/internal/core/domain"
	"context"
	"fmt"
	"strings"
)

const (
	submitSuccessMessage = "New playlist created successfully!"
	submitFailureMessage = "Error creating sorted playlist. Please try again."
)

// Submit asks the service to create a new playlist named name seeded with the
// current order. On failure an alert is raised and the view state is kept so
// the user can retry. An empty item list is not rejected.
func (e *SortEngine) Submit(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrEmptyPlaylistName
	}

	e.mu.Lock()
	if e.submitting {
		e.mu.Unlock()
		return "", domain.ErrBusy
	}
	if e.playlist.ID == "" {
		e.mu.Unlock()
		return "", domain.ErrEmptyPlaylistID
	}

	req := e.buildRequest(name)
	e.submitting = true
	e.mu.Unlock()

	e.log.Info("Init Submit sorted playlist", "playlist_id", req.PlaylistID, "sort_by", req.SortBy, "order", string(req.Order), "name", name)

	newID, err := e.api.CreateSortedPlaylist(ctx, req)

	e.mu.Lock()
	e.submitting = false
	if err == nil {
		e.createdID = newID
	}
	e.mu.Unlock()

	if err != nil {
		e.log.Error("Error sorting playlist", err, "playlist_id", req.PlaylistID)
		e.alerts.Alert(submitFailureMessage)
		return "", fmt.Errorf("error while creating sorted playlist: %w", err)
	}

	e.log.Info("Sorted playlist created", "new_playlist_id", newID)
	e.alerts.Alert(submitSuccessMessage)

	return newID, nil
}

// buildRequest must be called with e.mu held.
func (e *SortEngine) buildRequest(name string) domain.SortRequest {
	req := domain.SortRequest{
		PlaylistID:      e.playlist.ID,
		SortBy:          string(e.spec.Field),
		Order:           e.spec.Direction,
		NewPlaylistName: name,
		CreatePlaylist:  true,
	}

	if e.source.IsManual() {
		req.SortBy = domain.ManualSortKey
		req.VideoIDs = domain.VideoIDs(e.items)
	}

	return req
}
