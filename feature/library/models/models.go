package models

import "time"

// LibraryItem is a single curated video in the library.
//
// Remote-owned fields (Title, ChannelTitle, ThumbnailURL, Tags, Duration,
// Topics) are overwritten from the latest snapshot on every sync.
// User-owned fields (Rating, Comments, HypeUp, HypeDown) and AddedAt are
// never touched by a sync; they change only through explicit operations.
type LibraryItem struct {
	// YoutubeID is the stable external identifier and the store key.
	YoutubeID string `json:"youtubeId" gorm:"primaryKey;column:youtube_id"`

	// Title is the video title as of the last sync.
	Title string `json:"title"`

	// ChannelTitle is the owning channel name as of the last sync.
	ChannelTitle string `json:"channelTitle"`

	// ThumbnailURL points at the medium-size thumbnail.
	ThumbnailURL string `json:"thumbnailUrl"`

	// AddedAt is when the video first appeared in the remote liked list.
	// It is set once and preserved across syncs.
	AddedAt time.Time `json:"addedAt"`

	// Rating is the user rating, 1-5. Zero means unrated.
	Rating int `json:"rating,omitempty"`

	// Comments are user notes in insertion order, addressed by index.
	Comments []string `json:"comments" gorm:"serializer:json"`

	// Synced is true while the video is present in the remote source.
	// False marks an orphan awaiting user disposition.
	Synced bool `json:"synced"`

	// Tags are the uploader tags, if the details fetch returned any.
	Tags []string `json:"tags,omitempty" gorm:"serializer:json"`

	// Duration is the ISO 8601 duration code (e.g. "PT5M47S").
	Duration string `json:"duration,omitempty"`

	// Topics are Wikipedia topic category URLs.
	Topics []string `json:"topics,omitempty" gorm:"serializer:json"`

	// HypeUp and HypeDown are counters incremented by the user.
	HypeUp   int `json:"hypeUp"`
	HypeDown int `json:"hypeDown"`

	// Position preserves store order across whole-document replaces.
	Position int `json:"-" gorm:"column:position"`
}

// TableName sets the storage table for library items.
func (LibraryItem) TableName() string { return "library_items" }

// Rated reports whether the item carries a rating.
func (i LibraryItem) Rated() bool { return i.Rating > 0 }

// ValidRating reports whether r is usable as a rating value.
func ValidRating(r int) bool { return r >= 1 && r <= 5 }

// RetentionEntry records a video the user removed from the library.
// A sync never reintroduces a ledgered video; only an explicit restore
// removes the entry.
type RetentionEntry struct {
	YoutubeID string    `json:"youtubeId" gorm:"primaryKey;column:youtube_id"`
	RemovedAt time.Time `json:"removedAt"`
}

// TableName sets the storage table for retention entries.
func (RetentionEntry) TableName() string { return "retention_entries" }

// Library is the whole persisted store document.
type Library struct {
	Items    []LibraryItem `json:"items"`
	LastSync time.Time     `json:"lastSync"`
}

// SyncState tracks when the library was last reconciled. Single row.
type SyncState struct {
	ID       int       `json:"-" gorm:"primaryKey"`
	LastSync time.Time `json:"lastSync"`
}

// TableName sets the storage table for the sync state row.
func (SyncState) TableName() string { return "sync_state" }

// SyncReport summarizes one sync run.
type SyncReport struct {
	// Added lists the ids of videos first seen in this snapshot.
	Added []string `json:"added"`

	// Orphaned lists the ids of videos newly flagged as missing remotely.
	Orphaned []string `json:"orphaned"`

	// TotalFetched is the snapshot size.
	TotalFetched int `json:"totalFetched"`

	// NeedsConfirmation is true when orphans are pending user disposition.
	NeedsConfirmation bool `json:"needsConfirmation"`

	// Policy is the retention policy that was applied.
	Policy RetentionPolicy `json:"policy"`

	LastSync time.Time `json:"lastSync"`
}
