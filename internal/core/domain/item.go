package domain

import "time"

// PlaylistItem is one video entry of a playlist. Its position is its index
// in the sort engine's slice.
type PlaylistItem struct {
	ID           string
	VideoID      string
	Title        string
	ChannelTitle string
	PublishedAt  string
	ThumbnailURL string
}

// publishedLayouts are tried in order by PublishedTime.
var publishedLayouts = []string{time.RFC3339, time.DateOnly}

// PublishedTime parses PublishedAt as an RFC 3339 timestamp or a plain
// date. Missing or malformed values map to the Unix epoch so they sort first
// in ascending order.
func (i PlaylistItem) PublishedTime() time.Time {
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, i.PublishedAt); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}

// ItemIDs returns the identifiers of items in order.
func ItemIDs(items []PlaylistItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

// VideoIDs returns the video identifiers of items in order, falling back to
// the item id when the video id is unknown.
func VideoIDs(items []PlaylistItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		if item.VideoID != "" {
			ids[i] = item.VideoID
		} else {
			ids[i] = item.ID
		}
	}
	return ids
}
