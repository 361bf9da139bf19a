package remote

// Config holds configuration for the remote video source.
type Config struct {
	// BaseURL is the API root. Overridable for tests.
	BaseURL string `mapstructure:"base_url" default:"https://www.googleapis.com/youtube/v3"`
	// Token is the OAuth2 access token used as a bearer credential.
	Token string `mapstructure:"token" default:""`
	// PlaylistID is the playlist holding the liked videos ("LL").
	PlaylistID string `mapstructure:"playlist_id" default:"LL"`
	// FetchDetails controls the second pass that loads tags, duration
	// and topic categories for every video in the snapshot.
	FetchDetails bool `mapstructure:"fetch_details" default:"true"`
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
