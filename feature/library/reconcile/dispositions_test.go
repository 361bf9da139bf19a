package reconcile

import (
	"testing"
	"time"

	"media-library/feature/library/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeepAll(t *testing.T) {
	items := []models.LibraryItem{
		item("A"),
		item("B", func(i *models.LibraryItem) { i.Synced = false }),
		item("C", func(i *models.LibraryItem) { i.Synced = false }),
	}

	out := KeepAll(items)

	require.Len(t, out, 3)
	for _, it := range out {
		assert.True(t, it.Synced)
	}

	// Re-applying changes nothing.
	assert.Equal(t, out, KeepAll(out))
}

func TestDeleteAll(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []models.LibraryItem{
		item("A"),
		item("B", func(i *models.LibraryItem) { i.Synced = false }),
		item("C", func(i *models.LibraryItem) { i.Synced = false }),
	}

	out, ledger := DeleteAll(items, nil, now)

	assert.Equal(t, []string{"A"}, ids(out))
	require.Len(t, ledger, 2)
	assert.Equal(t, "B", ledger[0].YoutubeID)
	assert.Equal(t, "C", ledger[1].YoutubeID)
	assert.Equal(t, now, ledger[0].RemovedAt)

	// Idempotent: a second pass has no orphans left to delete.
	again, ledger2 := DeleteAll(out, ledger, now.Add(time.Hour))
	assert.Equal(t, out, again)
	assert.Equal(t, ledger, ledger2)
}

func TestKeep_Individual(t *testing.T) {
	items := []models.LibraryItem{
		item("A", func(i *models.LibraryItem) { i.Synced = false }),
		item("B", func(i *models.LibraryItem) { i.Synced = false }),
	}

	out := Keep(items, "A")

	assert.True(t, out[0].Synced)
	assert.False(t, out[1].Synced)

	// Unknown id is a no-op.
	assert.Equal(t, out, Keep(out, "missing"))
}

func TestDelete_Individual(t *testing.T) {
	now := time.Now()
	items := []models.LibraryItem{item("A"), item("B")}

	out, ledger := Delete(items, nil, "B", now)

	assert.Equal(t, []string{"A"}, ids(out))
	require.Len(t, ledger, 1)
	assert.Equal(t, "B", ledger[0].YoutubeID)

	// Deleting the same id again keeps the ledger deduplicated.
	out, ledger = Delete(out, ledger, "B", now.Add(time.Minute))
	assert.Equal(t, []string{"A"}, ids(out))
	require.Len(t, ledger, 1)
	assert.Equal(t, now, ledger[0].RemovedAt, "first removal timestamp wins")
}
