package usecases

import (
	"TUI_playlist_sorter/internal/core/domain"
	"context"
	"fmt"
	"strings"
)

// FetchPlaylists replaces the collection with the channel's playlists. An
// empty channel id is a no-op; on failure the previous collection and
// channel stay. A response overtaken by a newer fetch is dropped and
// ErrStaleResponse returned.
func (b *PlaylistBrowser) FetchPlaylists(ctx context.Context, channelID string) error {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return nil
	}

	b.log.Info("Init Fetch playlists", "channel_id", channelID)

	b.mu.Lock()
	b.generation++
	gen := b.generation
	b.loading = true
	b.mu.Unlock()

	playlists, err := b.api.ListPlaylists(ctx, channelID)

	b.mu.Lock()
	defer b.mu.Unlock()

	if gen != b.generation {
		b.log.Warning("Discarding superseded playlists response", "channel_id", channelID, "generation", gen, "latest", b.generation)
		return domain.ErrStaleResponse
	}

	b.loading = false

	if err != nil {
		b.log.Error("Error fetching playlists", err, "channel_id", channelID)
		return fmt.Errorf("error while fetching playlists for channel %s: %w", channelID, err)
	}

	if playlists == nil {
		playlists = []domain.PlaylistSummary{}
	}
	b.playlists = playlists
	b.channelID = channelID

	b.log.Info("Fetch playlists done", "count", len(playlists))

	return nil
}
