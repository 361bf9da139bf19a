package reconcile

import (
	"media-library/feature/library/models"
)

// Result is the outcome of merging a remote snapshot into the store.
type Result struct {
	// Items is the full replacement store. Orphans stay in it with
	// Synced=false until a disposition operation resolves them.
	Items []models.LibraryItem

	// Added lists items first seen in this snapshot, in fetch order.
	Added []models.LibraryItem

	// Orphaned lists items newly flagged as missing remotely, in store
	// order. Items already flagged are not reported again.
	Orphaned []models.LibraryItem
}

// Merge reconciles the current store against a complete remote snapshot.
//
// The snapshot is authoritative for existence and for the remote-owned
// descriptive fields; ratings, comments, hype counters and the original
// AddedAt always survive from the current store. Ledgered ids are
// skipped entirely, even when present in the snapshot. Merge never
// deletes anything: items missing from the snapshot are marked
// Synced=false and kept. A ledgered id still sitting in the current
// store is carried forward untouched, neither merged nor orphan-flagged;
// removing it is the caller's job, not Merge's. If the snapshot lists
// the same id twice, only the first occurrence counts.
//
// Ordering is stable: existing items keep their store order, new items
// are appended in fetch order. Merge is pure and idempotent; running it
// twice with the same inputs yields the same result and the second run
// reports no additions or orphans.
func Merge(current, fetched []models.LibraryItem, ledger []models.RetentionEntry) Result {
	ledgered := make(map[string]struct{}, len(ledger))
	for _, e := range ledger {
		ledgered[e.YoutubeID] = struct{}{}
	}

	fetchedByID := make(map[string]models.LibraryItem, len(fetched))
	for _, f := range fetched {
		if _, ok := fetchedByID[f.YoutubeID]; !ok {
			fetchedByID[f.YoutubeID] = f
		}
	}

	result := Result{
		Items: make([]models.LibraryItem, 0, len(current)+len(fetched)),
	}

	// Pass over the current store: flag fresh orphans, merge remote
	// fields into survivors.
	seen := make(map[string]struct{}, len(current))
	for _, item := range current {
		seen[item.YoutubeID] = struct{}{}

		f, present := fetchedByID[item.YoutubeID]
		if _, removed := ledgered[item.YoutubeID]; removed {
			present = false
		}

		if !present {
			if _, removed := ledgered[item.YoutubeID]; !removed {
				if item.Synced {
					item.Synced = false
					result.Orphaned = append(result.Orphaned, item)
				}
			}
			result.Items = append(result.Items, item)
			continue
		}

		result.Items = append(result.Items, overlayRemote(item, f))
	}

	// Append items the store has never seen, in fetch order. Marking
	// each appended id as seen keeps the store key-unique when the
	// snapshot itself lists a video twice.
	for _, f := range fetched {
		if _, removed := ledgered[f.YoutubeID]; removed {
			continue
		}
		if _, exists := seen[f.YoutubeID]; exists {
			continue
		}
		seen[f.YoutubeID] = struct{}{}
		item := f
		item.Synced = true
		result.Items = append(result.Items, item)
		result.Added = append(result.Added, item)
	}

	return result
}

// overlayRemote replaces the remote-owned fields of an existing item
// with the fetched values and keeps everything user-owned.
func overlayRemote(existing, fetched models.LibraryItem) models.LibraryItem {
	existing.Title = fetched.Title
	existing.ChannelTitle = fetched.ChannelTitle
	existing.ThumbnailURL = fetched.ThumbnailURL
	existing.Tags = fetched.Tags
	existing.Duration = fetched.Duration
	existing.Topics = fetched.Topics
	existing.Synced = true
	return existing
}
