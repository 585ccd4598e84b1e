package usecases

import (
	"TUI_playlist_sorter/internal/core/domain"
	"context"
	"fmt"
)

// LoadItems replaces the items with the playlist's current content, sorted by
// the selected spec. A response that was overtaken by a newer LoadItems call
// is dropped and ErrStaleResponse returned.
func (e *SortEngine) LoadItems(ctx context.Context, playlist domain.PlaylistSummary) error {
	if playlist.ID == "" {
		return domain.ErrEmptyPlaylistID
	}

	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.playlist = playlist
	e.items = nil
	e.source = domain.AutoOrder(e.spec)
	e.loading = true
	e.createdID = ""
	e.mu.Unlock()

	e.log.Info("Init Load playlist items", "playlist_id", playlist.ID, "generation", gen)

	items, err := e.api.ListPlaylistItems(ctx, playlist.ID)

	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.generation {
		e.log.Warning("Discarding superseded playlist items response", "playlist_id", playlist.ID, "generation", gen, "latest", e.generation)
		return domain.ErrStaleResponse
	}

	e.loading = false

	if err != nil {
		e.log.Error("Error fetching playlist items", err, "playlist_id", playlist.ID)
		return fmt.Errorf("error while loading items of playlist %s: %w", playlist.ID, err)
	}

	e.source = domain.AutoOrder(e.spec)
	e.items = domain.DeriveOrder(items, e.source, e.locale)

	e.log.Info("Load playlist items done", "playlist_id", playlist.ID, "count", len(e.items))

	return nil
}
