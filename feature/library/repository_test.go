package library

import (
	"context"
	"testing"
	"time"

	coredb "media-library/core/database"
	"media-library/feature/library/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := coredb.Connect(coredb.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	repo := NewRepository(db)
	require.NoError(t, repo.Migrate())
	return repo
}

func TestReplaceAndLoadLibrary(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	lastSync := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	lib := models.Library{
		Items: []models.LibraryItem{
			{YoutubeID: "vid-c", Title: "Third liked", Comments: []string{}, Synced: true},
			{YoutubeID: "vid-a", Title: "First liked", Rating: 5, Comments: []string{"great"}, Synced: true},
			{YoutubeID: "vid-b", Title: "Second liked", Comments: []string{}, Synced: false},
		},
		LastSync: lastSync,
	}

	require.NoError(t, repo.ReplaceLibrary(ctx, lib))

	loaded, err := repo.LoadLibrary(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 3)

	// Stored order survives the round trip.
	assert.Equal(t, "vid-c", loaded.Items[0].YoutubeID)
	assert.Equal(t, "vid-a", loaded.Items[1].YoutubeID)
	assert.Equal(t, "vid-b", loaded.Items[2].YoutubeID)

	assert.Equal(t, 5, loaded.Items[1].Rating)
	assert.Equal(t, []string{"great"}, loaded.Items[1].Comments)
	assert.False(t, loaded.Items[2].Synced)
	assert.WithinDuration(t, lastSync, loaded.LastSync, time.Second)
}

func TestReplaceLibraryIsWholeDocument(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := models.Library{Items: []models.LibraryItem{
		{YoutubeID: "old-1", Comments: []string{}},
		{YoutubeID: "old-2", Comments: []string{}},
	}}
	require.NoError(t, repo.ReplaceLibrary(ctx, first))

	second := models.Library{Items: []models.LibraryItem{
		{YoutubeID: "new-1", Comments: []string{}},
	}}
	require.NoError(t, repo.ReplaceLibrary(ctx, second))

	loaded, err := repo.LoadLibrary(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "new-1", loaded.Items[0].YoutubeID)
}

func TestLoadLibraryEmpty(t *testing.T) {
	repo := newTestRepository(t)

	lib, err := repo.LoadLibrary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lib.Items)
	assert.True(t, lib.LastSync.IsZero())
}

func TestLedgerRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	entries := []models.RetentionEntry{
		{YoutubeID: "gone-1", RemovedAt: time.Now().UTC().Add(-time.Hour)},
		{YoutubeID: "gone-2", RemovedAt: time.Now().UTC()},
	}
	require.NoError(t, repo.ReplaceLedger(ctx, entries))

	loaded, err := repo.LoadLedger(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "gone-1", loaded[0].YoutubeID)

	require.NoError(t, repo.RemoveLedgerEntry(ctx, "gone-1"))
	loaded, err = repo.LoadLedger(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "gone-2", loaded[0].YoutubeID)

	// Restoring an id that is not ledgered is a no-op.
	require.NoError(t, repo.RemoveLedgerEntry(ctx, "never-there"))
}

func TestSettings(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("DefaultsBeforeFirstSave", func(t *testing.T) {
		s, err := repo.LoadSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.PolicyAsk, s.RetentionPolicy)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		require.NoError(t, repo.SaveSettings(ctx, models.Settings{RetentionPolicy: models.PolicyKeep}))

		s, err := repo.LoadSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.PolicyKeep, s.RetentionPolicy)
	})

	t.Run("InvalidStoredPolicyFallsBack", func(t *testing.T) {
		require.NoError(t, repo.db.Save(&models.Settings{ID: 1, RetentionPolicy: "bogus"}).Error)

		s, err := repo.LoadSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.PolicyAsk, s.RetentionPolicy)
	})
}

func TestTemplates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	tpl := models.SearchTemplate{
		ID:   "tpl-1",
		Name: "good space videos",
		Include: []models.SearchCondition{
			{Kind: models.KindRating, Operand: ">=4"},
			{Kind: models.KindKeyword, Operand: "space"},
		},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.SaveTemplate(ctx, tpl))

	templates, err := repo.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "good space videos", templates[0].Name)
	require.Len(t, templates[0].Include, 2)
	assert.Equal(t, models.KindRating, templates[0].Include[0].Kind)

	require.NoError(t, repo.DeleteTemplate(ctx, "tpl-1"))
	templates, err = repo.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Empty(t, templates)
}

func TestLoadLibraryQueryError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	repo := NewRepository(db)
	_, err = repo.LoadLibrary(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
