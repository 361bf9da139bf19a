package library

import (
	"context"
	"errors"
	"testing"
	"time"

	"media-library/feature/library/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeFetcher serves a canned snapshot.
type fakeFetcher struct {
	auth  bool
	items []models.LibraryItem
	err   error
}

func (f *fakeFetcher) Authenticated() bool { return f.auth }

func (f *fakeFetcher) FetchSnapshot(ctx context.Context) ([]models.LibraryItem, error) {
	return f.items, f.err
}

func snapshotItem(id, title string) models.LibraryItem {
	return models.LibraryItem{
		YoutubeID:    id,
		Title:        title,
		ChannelTitle: "Test Channel",
		AddedAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Comments:     []string{},
		Synced:       true,
	}
}

func newTestService(t *testing.T, fetcher Fetcher) *Service {
	t.Helper()
	repo := newTestRepository(t)
	return NewService(repo, fetcher, zap.NewNop())
}

func seedLibrary(t *testing.T, svc *Service, items ...models.LibraryItem) {
	t.Helper()
	require.NoError(t, svc.repo.ReplaceLibrary(context.Background(), models.Library{Items: items}))
}

func TestSyncErrors(t *testing.T) {
	t.Run("NotAuthenticated", func(t *testing.T) {
		svc := newTestService(t, &fakeFetcher{auth: false})
		_, err := svc.Sync(context.Background())
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("FetchFailureLeavesStoreUntouched", func(t *testing.T) {
		svc := newTestService(t, &fakeFetcher{auth: true, err: errors.New("quota exceeded")})
		seedLibrary(t, svc, snapshotItem("kept", "Kept"))

		_, err := svc.Sync(context.Background())
		require.Error(t, err)

		lib, err := svc.Library(context.Background())
		require.NoError(t, err)
		require.Len(t, lib.Items, 1)
		assert.Equal(t, "kept", lib.Items[0].YoutubeID)
	})
}

func TestSyncAddsNewItems(t *testing.T) {
	fetcher := &fakeFetcher{auth: true, items: []models.LibraryItem{
		snapshotItem("a", "Video A"),
		snapshotItem("b", "Video B"),
	}}
	svc := newTestService(t, fetcher)

	report, err := svc.Sync(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a", "b"}, report.Added)
	assert.Empty(t, report.Orphaned)
	assert.Equal(t, 2, report.TotalFetched)
	assert.False(t, report.NeedsConfirmation)
	assert.False(t, report.LastSync.IsZero())

	lib, err := svc.Library(context.Background())
	require.NoError(t, err)
	require.Len(t, lib.Items, 2)
	assert.True(t, lib.Items[0].Synced)
}

func TestSyncPreservesAnnotations(t *testing.T) {
	fetcher := &fakeFetcher{auth: true, items: []models.LibraryItem{
		snapshotItem("a", "Renamed Title"),
	}}
	svc := newTestService(t, fetcher)

	existing := snapshotItem("a", "Old Title")
	existing.Rating = 4
	existing.Comments = []string{"watch again"}
	existing.HypeUp = 2
	seedLibrary(t, svc, existing)

	_, err := svc.Sync(context.Background())
	require.NoError(t, err)

	lib, err := svc.Library(context.Background())
	require.NoError(t, err)
	require.Len(t, lib.Items, 1)

	item := lib.Items[0]
	assert.Equal(t, "Renamed Title", item.Title)
	assert.Equal(t, 4, item.Rating)
	assert.Equal(t, []string{"watch again"}, item.Comments)
	assert.Equal(t, 2, item.HypeUp)
}

func TestSyncRetentionPolicies(t *testing.T) {
	t.Run("AskFlagsOrphans", func(t *testing.T) {
		svc := newTestService(t, &fakeFetcher{auth: true})
		seedLibrary(t, svc, snapshotItem("gone", "Disappeared"))

		report, err := svc.Sync(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []string{"gone"}, report.Orphaned)
		assert.True(t, report.NeedsConfirmation)

		lib, err := svc.Library(context.Background())
		require.NoError(t, err)
		require.Len(t, lib.Items, 1)
		assert.False(t, lib.Items[0].Synced)
	})

	t.Run("KeepResolvesOrphans", func(t *testing.T) {
		svc := newTestService(t, &fakeFetcher{auth: true})
		seedLibrary(t, svc, snapshotItem("gone", "Disappeared"))
		require.NoError(t, svc.SaveSettings(context.Background(), models.Settings{RetentionPolicy: models.PolicyKeep}))

		report, err := svc.Sync(context.Background())
		require.NoError(t, err)
		assert.False(t, report.NeedsConfirmation)

		lib, err := svc.Library(context.Background())
		require.NoError(t, err)
		require.Len(t, lib.Items, 1)
		assert.True(t, lib.Items[0].Synced)
	})

	t.Run("DeleteRemovesAndLedgersOrphans", func(t *testing.T) {
		svc := newTestService(t, &fakeFetcher{auth: true})
		seedLibrary(t, svc, snapshotItem("gone", "Disappeared"))
		require.NoError(t, svc.SaveSettings(context.Background(), models.Settings{RetentionPolicy: models.PolicyDelete}))

		report, err := svc.Sync(context.Background())
		require.NoError(t, err)
		assert.False(t, report.NeedsConfirmation)

		lib, err := svc.Library(context.Background())
		require.NoError(t, err)
		assert.Empty(t, lib.Items)

		ledger, err := svc.Retention(context.Background())
		require.NoError(t, err)
		require.Len(t, ledger, 1)
		assert.Equal(t, "gone", ledger[0].YoutubeID)
	})
}

func TestSyncHonorsLedger(t *testing.T) {
	fetcher := &fakeFetcher{auth: true, items: []models.LibraryItem{
		snapshotItem("deleted", "Still liked remotely"),
	}}
	svc := newTestService(t, fetcher)

	seedLibrary(t, svc, snapshotItem("deleted", "Still liked remotely"))
	require.NoError(t, svc.DeleteItem(context.Background(), "deleted"))

	report, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Added)

	lib, err := svc.Library(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lib.Items)

	// After restoring, the next sync brings the video back.
	require.NoError(t, svc.RestoreItem(context.Background(), "deleted"))
	report, err = svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"deleted"}, report.Added)
}

func TestConfirmSync(t *testing.T) {
	seedOrphan := func(t *testing.T, svc *Service) {
		orphan := snapshotItem("orphan", "Pending")
		orphan.Synced = false
		seedLibrary(t, svc, orphan)
	}

	t.Run("KeepAll", func(t *testing.T) {
		svc := newTestService(t, &fakeFetcher{auth: true})
		seedOrphan(t, svc)

		lib, err := svc.ConfirmSync(context.Background(), ActionKeepAll)
		require.NoError(t, err)
		require.Len(t, lib.Items, 1)
		assert.True(t, lib.Items[0].Synced)
	})

	t.Run("DeleteAll", func(t *testing.T) {
		svc := newTestService(t, &fakeFetcher{auth: true})
		seedOrphan(t, svc)

		lib, err := svc.ConfirmSync(context.Background(), ActionDeleteAll)
		require.NoError(t, err)
		assert.Empty(t, lib.Items)

		ledger, err := svc.Retention(context.Background())
		require.NoError(t, err)
		require.Len(t, ledger, 1)
		assert.Equal(t, "orphan", ledger[0].YoutubeID)
	})

	t.Run("IndividualLeavesPending", func(t *testing.T) {
		svc := newTestService(t, &fakeFetcher{auth: true})
		seedOrphan(t, svc)

		lib, err := svc.ConfirmSync(context.Background(), ActionIndividual)
		require.NoError(t, err)
		require.Len(t, lib.Items, 1)
		assert.False(t, lib.Items[0].Synced)
	})

	t.Run("UnknownAction", func(t *testing.T) {
		svc := newTestService(t, &fakeFetcher{auth: true})
		_, err := svc.ConfirmSync(context.Background(), "purge")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpdateRating(t *testing.T) {
	svc := newTestService(t, &fakeFetcher{auth: true})
	seedLibrary(t, svc, snapshotItem("a", "Video A"))

	require.NoError(t, svc.UpdateRating(context.Background(), "a", 5))

	lib, err := svc.Library(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, lib.Items[0].Rating)

	assert.ErrorIs(t, svc.UpdateRating(context.Background(), "a", 0), ErrInvalidInput)
	assert.ErrorIs(t, svc.UpdateRating(context.Background(), "a", 6), ErrInvalidInput)
	assert.ErrorIs(t, svc.UpdateRating(context.Background(), "missing", 3), ErrNotFound)
}

func TestComments(t *testing.T) {
	svc := newTestService(t, &fakeFetcher{auth: true})
	seedLibrary(t, svc, snapshotItem("a", "Video A"))
	ctx := context.Background()

	require.NoError(t, svc.AddComment(ctx, "a", "first"))
	require.NoError(t, svc.AddComment(ctx, "a", "second"))
	require.NoError(t, svc.UpdateComment(ctx, "a", 1, "second, edited"))

	lib, err := svc.Library(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second, edited"}, lib.Items[0].Comments)

	// Deleting keeps the indices dense.
	require.NoError(t, svc.DeleteComment(ctx, "a", 0))
	lib, err = svc.Library(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"second, edited"}, lib.Items[0].Comments)

	assert.ErrorIs(t, svc.AddComment(ctx, "a", ""), ErrInvalidInput)
	assert.ErrorIs(t, svc.UpdateComment(ctx, "a", 9, "nope"), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteComment(ctx, "a", -1), ErrNotFound)
	assert.ErrorIs(t, svc.AddComment(ctx, "missing", "hi"), ErrNotFound)
}

func TestHype(t *testing.T) {
	svc := newTestService(t, &fakeFetcher{auth: true})
	seedLibrary(t, svc, snapshotItem("a", "Video A"))
	ctx := context.Background()

	require.NoError(t, svc.Hype(ctx, "a", "up"))
	require.NoError(t, svc.Hype(ctx, "a", "up"))
	require.NoError(t, svc.Hype(ctx, "a", "down"))

	lib, err := svc.Library(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, lib.Items[0].HypeUp)
	assert.Equal(t, 1, lib.Items[0].HypeDown)

	assert.ErrorIs(t, svc.Hype(ctx, "a", "sideways"), ErrInvalidInput)
}

func TestKeepItem(t *testing.T) {
	svc := newTestService(t, &fakeFetcher{auth: true})
	orphan := snapshotItem("orphan", "Pending")
	orphan.Synced = false
	seedLibrary(t, svc, orphan)

	require.NoError(t, svc.KeepItem(context.Background(), "orphan"))

	lib, err := svc.Library(context.Background())
	require.NoError(t, err)
	assert.True(t, lib.Items[0].Synced)
}

func TestSearch(t *testing.T) {
	svc := newTestService(t, &fakeFetcher{auth: true})

	rated := snapshotItem("rated", "Rocket Launch")
	rated.Rating = 5
	unrated := snapshotItem("unrated", "Cooking Show")
	seedLibrary(t, svc, rated, unrated)

	items, err := svc.Search(context.Background(),
		[]models.SearchCondition{{Kind: models.KindRating, Operand: ">=4"}}, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "rated", items[0].YoutubeID)
}

func TestTemplatesLifecycle(t *testing.T) {
	svc := newTestService(t, &fakeFetcher{auth: true})
	ctx := context.Background()

	tpl, err := svc.SaveTemplate(ctx, "favorites",
		[]models.SearchCondition{{Kind: models.KindRating, Operand: ">=4"}}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, tpl.ID)
	assert.False(t, tpl.CreatedAt.IsZero())

	templates, err := svc.Templates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "favorites", templates[0].Name)

	require.NoError(t, svc.DeleteTemplate(ctx, tpl.ID))
	templates, err = svc.Templates(ctx)
	require.NoError(t, err)
	assert.Empty(t, templates)

	_, err = svc.SaveTemplate(ctx, "", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSaveSettingsValidation(t *testing.T) {
	svc := newTestService(t, &fakeFetcher{auth: true})

	err := svc.SaveSettings(context.Background(), models.Settings{RetentionPolicy: "sometimes"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
