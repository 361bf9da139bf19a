package library

import (
	"context"
	"errors"
	"fmt"

	"media-library/feature/library/models"

	"gorm.io/gorm"
)

// Repository persists the library documents through GORM.
//
// Persistence is whole-document by design: the store and the ledger are
// loaded completely and replaced completely inside a transaction. The
// engines never see partial state and the repository never performs a
// partial update of the item set.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on top of an open connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the backing tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&models.LibraryItem{},
		&models.RetentionEntry{},
		&models.SearchTemplate{},
		&models.Settings{},
		&models.SyncState{},
	)
}

// LoadLibrary reads the full item store in stored order.
func (r *Repository) LoadLibrary(ctx context.Context) (models.Library, error) {
	var lib models.Library

	if err := r.db.WithContext(ctx).Order("position").Find(&lib.Items).Error; err != nil {
		return models.Library{}, fmt.Errorf("failed to load library items: %w", err)
	}

	var state models.SyncState
	err := r.db.WithContext(ctx).First(&state).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Library{}, fmt.Errorf("failed to load sync state: %w", err)
	}
	lib.LastSync = state.LastSync

	return lib, nil
}

// ReplaceLibrary swaps the entire item store for the given document.
func (r *Repository) ReplaceLibrary(ctx context.Context, lib models.Library) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.LibraryItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear library items: %w", err)
		}

		for i := range lib.Items {
			lib.Items[i].Position = i
		}
		if len(lib.Items) > 0 {
			if err := tx.Create(&lib.Items).Error; err != nil {
				return fmt.Errorf("failed to write library items: %w", err)
			}
		}

		state := models.SyncState{ID: 1, LastSync: lib.LastSync}
		if err := tx.Save(&state).Error; err != nil {
			return fmt.Errorf("failed to write sync state: %w", err)
		}

		return nil
	})
}

// LoadLedger reads the full retention ledger.
func (r *Repository) LoadLedger(ctx context.Context) ([]models.RetentionEntry, error) {
	var entries []models.RetentionEntry
	if err := r.db.WithContext(ctx).Order("removed_at").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load retention ledger: %w", err)
	}
	return entries, nil
}

// ReplaceLedger swaps the entire retention ledger.
func (r *Repository) ReplaceLedger(ctx context.Context, entries []models.RetentionEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.RetentionEntry{}).Error; err != nil {
			return fmt.Errorf("failed to clear retention ledger: %w", err)
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return fmt.Errorf("failed to write retention ledger: %w", err)
			}
		}
		return nil
	})
}

// RemoveLedgerEntry restores a removed video by dropping its ledger
// entry. Removing an id that is not ledgered is a no-op.
func (r *Repository) RemoveLedgerEntry(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.RetentionEntry{YoutubeID: id}).Error; err != nil {
		return fmt.Errorf("failed to remove ledger entry: %w", err)
	}
	return nil
}

// LoadSettings reads the persisted settings, falling back to defaults
// before the user has saved any.
func (r *Repository) LoadSettings(ctx context.Context) (models.Settings, error) {
	var s models.Settings
	err := r.db.WithContext(ctx).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if !s.RetentionPolicy.IsValid() {
		s.RetentionPolicy = models.PolicyAsk
	}
	return s, nil
}

// SaveSettings replaces the settings document.
func (r *Repository) SaveSettings(ctx context.Context, s models.Settings) error {
	s.ID = 1
	if err := r.db.WithContext(ctx).Save(&s).Error; err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// ListTemplates returns all saved search templates, oldest first.
func (r *Repository) ListTemplates(ctx context.Context) ([]models.SearchTemplate, error) {
	var templates []models.SearchTemplate
	if err := r.db.WithContext(ctx).Order("created_at").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// SaveTemplate stores a named condition bundle.
func (r *Repository) SaveTemplate(ctx context.Context, tpl models.SearchTemplate) error {
	if err := r.db.WithContext(ctx).Create(&tpl).Error; err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}

// DeleteTemplate removes a template by id. Unknown ids are a no-op.
func (r *Repository) DeleteTemplate(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.SearchTemplate{ID: id}).Error; err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}
