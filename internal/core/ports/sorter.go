package ports

import (
	"TUI_playlist_sorter/internal/core/domain"
	"context"
)

// SorterAPIPort is the remote playlist sorter service. The session lives in
// the implementation's cookie jar.
type SorterAPIPort interface {
	VerifySession(ctx context.Context) error
	Authenticate(ctx context.Context) error
	Logout(ctx context.Context) error
	ListPlaylists(ctx context.Context, channelID string) ([]domain.PlaylistSummary, error)
	ListPlaylistItems(ctx context.Context, playlistID string) ([]domain.PlaylistItem, error)
	CreateSortedPlaylist(ctx context.Context, req domain.SortRequest) (string, error)
}
