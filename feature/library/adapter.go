package library

import (
	"context"

	"media-library/core/remote"
	"media-library/feature/library/models"
)

// RemoteFetcher adapts the snapshot client to the Fetcher interface,
// mapping remote videos onto library items with annotations at their
// default state. Merge decides which of those defaults survive.
type RemoteFetcher struct {
	client *remote.Client
}

// NewRemoteFetcher wraps a snapshot client.
func NewRemoteFetcher(client *remote.Client) *RemoteFetcher {
	return &RemoteFetcher{client: client}
}

// Authenticated reports whether a remote credential is configured.
func (f *RemoteFetcher) Authenticated() bool {
	return f.client.Authenticated()
}

// FetchSnapshot fetches the complete remote snapshot as library items.
func (f *RemoteFetcher) FetchSnapshot(ctx context.Context) ([]models.LibraryItem, error) {
	videos, err := f.client.FetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.LibraryItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, models.LibraryItem{
			YoutubeID:    v.ID,
			Title:        v.Title,
			ChannelTitle: v.ChannelTitle,
			ThumbnailURL: v.ThumbnailURL,
			AddedAt:      v.PublishedAt,
			Comments:     []string{},
			Synced:       true,
			Tags:         v.Tags,
			Duration:     v.Duration,
			Topics:       v.Topics,
		})
	}
	return items, nil
}
