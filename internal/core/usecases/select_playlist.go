package usecases

import (
	"TUI_playlist_sorter/internal/core/domain"
	"slices"

	"github.com/sahilm/fuzzy"
)

// SelectPlaylist records the choice and returns what the reorder view needs.
func (b *PlaylistBrowser) SelectPlaylist(playlist domain.PlaylistSummary) domain.Selection {
	b.mu.Lock()
	b.selected = &playlist
	channelID := b.channelID
	b.mu.Unlock()

	b.log.Info("Playlist selected", "title", playlist.Title, "playlist_id", playlist.ID)

	return domain.Selection{Playlist: playlist, ChannelID: channelID}
}

type playlistTitles []domain.PlaylistSummary

func (p playlistTitles) String(i int) string { return p[i].Title }
func (p playlistTitles) Len() int            { return len(p) }

// Filter narrows the collection to playlists whose title fuzzy-matches query.
// Matches keep the service order.
func (b *PlaylistBrowser) Filter(query string) []domain.PlaylistSummary {
	playlists := b.Playlists()
	if query == "" {
		return playlists
	}

	matches := fuzzy.FindFrom(query, playlistTitles(playlists))
	indexes := make([]int, len(matches))
	for i, match := range matches {
		indexes[i] = match.Index
	}
	slices.Sort(indexes)

	out := make([]domain.PlaylistSummary, len(indexes))
	for i, idx := range indexes {
		out[i] = playlists[idx]
	}
	return out
}
