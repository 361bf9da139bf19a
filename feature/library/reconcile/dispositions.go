package reconcile

import (
	"time"

	"media-library/feature/library/models"
)

// Disposition operations resolve orphans left behind by Merge. All of
// them are idempotent: applying one to an already-resolved item is a
// no-op, never an error.

// KeepAll marks every orphaned item as synced again.
func KeepAll(items []models.LibraryItem) []models.LibraryItem {
	out := make([]models.LibraryItem, len(items))
	for i, item := range items {
		item.Synced = true
		out[i] = item
	}
	return out
}

// DeleteAll removes every orphaned item from the store and ledgers it
// so later syncs cannot reintroduce it. It returns the surviving items
// and the updated ledger.
func DeleteAll(items []models.LibraryItem, ledger []models.RetentionEntry, now time.Time) ([]models.LibraryItem, []models.RetentionEntry) {
	out := make([]models.LibraryItem, 0, len(items))
	for _, item := range items {
		if !item.Synced {
			ledger = appendEntry(ledger, item.YoutubeID, now)
			continue
		}
		out = append(out, item)
	}
	return out, ledger
}

// Keep marks one named item as synced. Unknown ids are left alone.
func Keep(items []models.LibraryItem, id string) []models.LibraryItem {
	out := make([]models.LibraryItem, len(items))
	for i, item := range items {
		if item.YoutubeID == id {
			item.Synced = true
		}
		out[i] = item
	}
	return out
}

// Delete removes one named item from the store and ledgers it. Deleting
// an id that is not in the store still ledgers it, so a delete issued
// twice stays a no-op overall.
func Delete(items []models.LibraryItem, ledger []models.RetentionEntry, id string, now time.Time) ([]models.LibraryItem, []models.RetentionEntry) {
	out := make([]models.LibraryItem, 0, len(items))
	for _, item := range items {
		if item.YoutubeID == id {
			continue
		}
		out = append(out, item)
	}
	return out, appendEntry(ledger, id, now)
}

// appendEntry adds an id to the ledger once; re-adding is a no-op.
func appendEntry(ledger []models.RetentionEntry, id string, now time.Time) []models.RetentionEntry {
	for _, e := range ledger {
		if e.YoutubeID == id {
			return ledger
		}
	}
	return append(ledger, models.RetentionEntry{YoutubeID: id, RemovedAt: now})
}
