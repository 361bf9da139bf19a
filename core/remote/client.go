package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// pageSize is the maximum page size the playlist and video endpoints accept.
const pageSize = 50

// Video is one entry of the remote snapshot. PublishedAt is the moment
// the video entered the liked playlist, not the upload date.
type Video struct {
	ID           string
	Title        string
	ChannelTitle string
	ThumbnailURL string
	PublishedAt  time.Time
	Tags         []string
	Duration     string
	Topics       []string
}

// Client fetches the complete liked-videos snapshot from the YouTube
// Data API v3. The snapshot is all-or-nothing: any transport or API
// error aborts the whole fetch, so reconciliation never runs against a
// truncated item set.
type Client struct {
	baseURL    string
	token      string
	playlistID string
	details    bool
	httpClient *http.Client
}

// NewClient creates a snapshot client based on the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	playlistID := cfg.PlaylistID
	if playlistID == "" {
		playlistID = "LL"
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		playlistID: playlistID,
		details:    cfg.FetchDetails,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// Authenticated reports whether a credential is configured at all.
func (c *Client) Authenticated() bool { return c.token != "" }

// FetchSnapshot returns every video currently in the liked playlist,
// enriched with tags/duration/topics when detail fetching is enabled.
func (c *Client) FetchSnapshot(ctx context.Context) ([]Video, error) {
	videos, err := c.fetchPlaylist(ctx)
	if err != nil {
		return nil, err
	}

	if c.details && len(videos) > 0 {
		if err := c.fillDetails(ctx, videos); err != nil {
			return nil, err
		}
	}

	return videos, nil
}

type playlistResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			Title                  string    `json:"title"`
			VideoOwnerChannelTitle string    `json:"videoOwnerChannelTitle"`
			PublishedAt            time.Time `json:"publishedAt"`
			Thumbnails             struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
			ResourceID struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

func (c *Client) fetchPlaylist(ctx context.Context) ([]Video, error) {
	var all []Video
	pageToken := ""

	for {
		params := url.Values{}
		params.Set("part", "snippet,contentDetails")
		params.Set("playlistId", c.playlistID)
		params.Set("maxResults", fmt.Sprintf("%d", pageSize))
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var page playlistResponse
		if err := c.get(ctx, "/playlistItems", params, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch playlist page: %w", err)
		}

		for _, entry := range page.Items {
			videoID := entry.Snippet.ResourceID.VideoID
			if videoID == "" {
				continue
			}
			title := entry.Snippet.Title
			if title == "" {
				title = "Unknown"
			}
			channel := entry.Snippet.VideoOwnerChannelTitle
			if channel == "" {
				channel = "Unknown"
			}
			publishedAt := entry.Snippet.PublishedAt
			if publishedAt.IsZero() {
				publishedAt = time.Now().UTC()
			}
			all = append(all, Video{
				ID:           videoID,
				Title:        title,
				ChannelTitle: channel,
				ThumbnailURL: entry.Snippet.Thumbnails.Medium.URL,
				PublishedAt:  publishedAt,
			})
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			return all, nil
		}
	}
}

type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Tags []string `json:"tags"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		TopicDetails struct {
			TopicCategories []string `json:"topicCategories"`
		} `json:"topicDetails"`
	} `json:"items"`
}

// fillDetails loads tags, duration and topic categories in batches of
// 50 ids and writes them into the snapshot in place.
func (c *Client) fillDetails(ctx context.Context, videos []Video) error {
	index := make(map[string]*Video, len(videos))
	ids := make([]string, 0, len(videos))
	for i := range videos {
		index[videos[i].ID] = &videos[i]
		ids = append(ids, videos[i].ID)
	}

	for start := 0; start < len(ids); start += pageSize {
		end := start + pageSize
		if end > len(ids) {
			end = len(ids)
		}

		params := url.Values{}
		params.Set("part", "snippet,contentDetails,topicDetails")
		params.Set("id", strings.Join(ids[start:end], ","))

		var page videosResponse
		if err := c.get(ctx, "/videos", params, &page); err != nil {
			return fmt.Errorf("failed to fetch video details: %w", err)
		}

		for _, video := range page.Items {
			target, ok := index[video.ID]
			if !ok {
				continue
			}
			target.Tags = video.Snippet.Tags
			target.Duration = video.ContentDetails.Duration
			target.Topics = video.TopicDetails.TopicCategories
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("remote returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
