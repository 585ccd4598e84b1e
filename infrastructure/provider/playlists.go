package provider

import (
	"TUI_playlist_sorter/internal/core/domain"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"google.golang.org/api/youtube/v3"
)

// The service relays YouTube Data API resources unchanged, so responses are
// decoded straight into the youtube/v3 types.
type playlistsResponse struct {
	Items []*youtube.Playlist `json:"items"`
}

type playlistItemsResponse struct {
	Items []*youtube.PlaylistItem `json:"items"`
}

type sortRequestBody struct {
	PlaylistID      string   `json:"playlist_id"`
	SortBy          string   `json:"sort_by"`
	Order           string   `json:"order"`
	NewPlaylistName string   `json:"new_playlist_name"`
	CreatePlaylist  bool     `json:"create_playlist"`
	VideoIDs        []string `json:"video_ids,omitempty"`
}

type sortResponse struct {
	NewPlaylistID string `json:"new_playlist_id"`
	Message       string `json:"message"`
	Error         string `json:"error"`
}

func (s *SorterProvider) ListPlaylists(ctx context.Context, channelID string) ([]domain.PlaylistSummary, error) {
	if channelID == "" {
		return nil, domain.ErrEmptyChannelID
	}

	var resp playlistsResponse
	if err := s.getJSON(ctx, "/api/playlists", url.Values{"channel_id": {channelID}}, &resp); err != nil {
		return nil, fmt.Errorf("error while listing playlists: %w", err)
	}

	playlists := make([]domain.PlaylistSummary, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil {
			continue
		}
		playlists = append(playlists, toPlaylistSummary(item))
	}

	if len(playlists) == 0 {
		s.log.Warning("No playlists found", "channel_id", channelID)
	}

	return playlists, nil
}

func (s *SorterProvider) ListPlaylistItems(ctx context.Context, playlistID string) ([]domain.PlaylistItem, error) {
	if playlistID == "" {
		return nil, domain.ErrEmptyPlaylistID
	}

	var resp playlistItemsResponse
	if err := s.getJSON(ctx, "/api/playlist-items", url.Values{"playlist_id": {playlistID}}, &resp); err != nil {
		return nil, fmt.Errorf("error while listing playlist items: %w", err)
	}

	items := make([]domain.PlaylistItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil {
			continue
		}
		items = append(items, toPlaylistItem(item))
	}

	return items, nil
}

func (s *SorterProvider) CreateSortedPlaylist(ctx context.Context, req domain.SortRequest) (string, error) {
	payload := sortRequestBody{
		PlaylistID:      req.PlaylistID,
		SortBy:          req.SortBy,
		Order:           string(req.Order),
		NewPlaylistName: req.NewPlaylistName,
		CreatePlaylist:  req.CreatePlaylist,
		VideoIDs:        req.VideoIDs,
	}

	status, body, err := s.doLong(ctx, http.MethodPost, "/api/sort", nil, payload)
	if err != nil {
		return "", err
	}
	if err := checkStatus(status, body); err != nil {
		return "", fmt.Errorf("error while creating sorted playlist: %w", err)
	}

	var resp sortResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("error while decoding sort response: %w", err)
	}

	if resp.NewPlaylistID == "" {
		return "", &domain.RemoteError{Kind: domain.ErrNoPlaylistCreated, Status: status, Message: resp.Error}
	}

	return resp.NewPlaylistID, nil
}

func toPlaylistSummary(p *youtube.Playlist) domain.PlaylistSummary {
	summary := domain.PlaylistSummary{ID: p.Id}
	if p.Snippet != nil {
		summary.Title = p.Snippet.Title
		summary.ThumbnailURL = thumbnailURL(p.Snippet.Thumbnails)
	}
	if p.ContentDetails != nil {
		summary.ItemCount = p.ContentDetails.ItemCount
	}
	return summary
}

func toPlaylistItem(i *youtube.PlaylistItem) domain.PlaylistItem {
	item := domain.PlaylistItem{ID: i.Id}
	if i.ContentDetails != nil {
		item.VideoID = i.ContentDetails.VideoId
	}
	if i.Snippet != nil {
		item.Title = i.Snippet.Title
		item.ChannelTitle = i.Snippet.VideoOwnerChannelTitle
		item.PublishedAt = i.Snippet.PublishedAt
		item.ThumbnailURL = thumbnailURL(i.Snippet.Thumbnails)
		if item.VideoID == "" && i.Snippet.ResourceId != nil {
			item.VideoID = i.Snippet.ResourceId.VideoId
		}
	}
	return item
}

func thumbnailURL(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, thumb := range []*youtube.Thumbnail{t.Default, t.Medium, t.High} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}
	return ""
}
