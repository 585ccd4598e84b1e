package domain

// PlaylistSummary is one playlist of a channel as returned by the sorter API.
type PlaylistSummary struct {
	ID           string
	Title        string
	ThumbnailURL string
	ItemCount    int64
}

// Selection carries the chosen playlist and the channel it was browsed from
// into the reorder view.
type Selection struct {
	Playlist  PlaylistSummary
	ChannelID string
}
