package usecases

import (
	"TUI_playlist_sorter/internal/core/domain"
	"TUI_playlist_sorter/internal/core/ports"
	"slices"
	"sync"
)

// PlaylistBrowser holds the playlists of the channel being browsed, in the
// order the service returned them. Fetches are stamped with a generation
// number like SortEngine loads.
type PlaylistBrowser struct {
	api ports.SorterAPIPort
	log ports.LoggerPort

	mu         sync.RWMutex
	channelID  string
	playlists  []domain.PlaylistSummary
	selected   *domain.PlaylistSummary
	loading    bool
	generation uint64
}

func NewPlaylistBrowser(api ports.SorterAPIPort, logger ports.LoggerPort) *PlaylistBrowser {
	return &PlaylistBrowser{
		api: api,
		log: logger,
	}
}

func (b *PlaylistBrowser) Playlists() []domain.PlaylistSummary {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.playlists)
}

func (b *PlaylistBrowser) ChannelID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.channelID
}

func (b *PlaylistBrowser) IsLoading() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loading
}

// Selected returns the last selected playlist, if any.
func (b *PlaylistBrowser) Selected() (domain.PlaylistSummary, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.selected == nil {
		return domain.PlaylistSummary{}, false
	}
	return *b.selected, true
}
