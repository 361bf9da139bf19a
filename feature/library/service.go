package library

import (
	"context"
	"errors"
	"fmt"
	"time"

	"media-library/feature/library/models"
	"media-library/feature/library/query"
	"media-library/feature/library/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Confirmation actions accepted by ConfirmSync.
const (
	ActionKeepAll    = "keep_all"
	ActionDeleteAll  = "delete_all"
	ActionIndividual = "individual"
)

var (
	// ErrNotFound is returned when the named item is not in the store.
	ErrNotFound = errors.New("item not found")
	// ErrNotAuthenticated is returned when no remote credential is configured.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidInput is returned for out-of-range or malformed arguments.
	ErrInvalidInput = errors.New("invalid input")
)

// Fetcher supplies the complete remote snapshot for a sync.
type Fetcher interface {
	Authenticated() bool
	FetchSnapshot(ctx context.Context) ([]models.LibraryItem, error)
}

// Service orchestrates the library operations: it brackets the pure
// reconcile and query engines with whole-document loads and replaces.
type Service struct {
	repo    *Repository
	fetcher Fetcher
	logger  *zap.Logger
}

// NewService creates a library service.
func NewService(repo *Repository, fetcher Fetcher, logger *zap.Logger) *Service {
	return &Service{repo: repo, fetcher: fetcher, logger: logger}
}

// Sync fetches the remote snapshot, reconciles it into the store and
// applies the configured retention policy to any orphans.
func (s *Service) Sync(ctx context.Context) (*models.SyncReport, error) {
	if s.fetcher == nil || !s.fetcher.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	fetched, err := s.fetcher.FetchSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot fetch failed: %w", err)
	}

	lib, err := s.repo.LoadLibrary(ctx)
	if err != nil {
		return nil, err
	}
	ledger, err := s.repo.LoadLedger(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}

	result := reconcile.Merge(lib.Items, fetched, ledger)

	report := &models.SyncReport{
		Added:        itemIDs(result.Added),
		Orphaned:     itemIDs(result.Orphaned),
		TotalFetched: len(fetched),
		Policy:       settings.RetentionPolicy,
	}

	items := result.Items
	switch settings.RetentionPolicy {
	case models.PolicyKeep:
		items = reconcile.KeepAll(items)
	case models.PolicyDelete:
		var updated []models.RetentionEntry
		items, updated = reconcile.DeleteAll(items, ledger, time.Now().UTC())
		if err := s.repo.ReplaceLedger(ctx, updated); err != nil {
			return nil, err
		}
	default:
		report.NeedsConfirmation = len(result.Orphaned) > 0
	}

	lib.Items = items
	lib.LastSync = time.Now().UTC()
	report.LastSync = lib.LastSync

	if err := s.repo.ReplaceLibrary(ctx, lib); err != nil {
		return nil, err
	}

	s.logger.Info("Library synced",
		zap.Int("fetched", report.TotalFetched),
		zap.Int("added", len(report.Added)),
		zap.Int("orphaned", len(report.Orphaned)),
		zap.String("policy", string(settings.RetentionPolicy)),
	)

	return report, nil
}

// ConfirmSync resolves pending orphans in bulk. The "individual" action
// leaves everything pending for per-item handling.
func (s *Service) ConfirmSync(ctx context.Context, action string) (models.Library, error) {
	lib, err := s.repo.LoadLibrary(ctx)
	if err != nil {
		return models.Library{}, err
	}

	switch action {
	case ActionKeepAll:
		lib.Items = reconcile.KeepAll(lib.Items)
	case ActionDeleteAll:
		ledger, err := s.repo.LoadLedger(ctx)
		if err != nil {
			return models.Library{}, err
		}
		var updated []models.RetentionEntry
		lib.Items, updated = reconcile.DeleteAll(lib.Items, ledger, time.Now().UTC())
		if err := s.repo.ReplaceLedger(ctx, updated); err != nil {
			return models.Library{}, err
		}
	case ActionIndividual:
		return lib, nil
	default:
		return models.Library{}, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}

	if err := s.repo.ReplaceLibrary(ctx, lib); err != nil {
		return models.Library{}, err
	}
	return lib, nil
}

// Library returns the full store document.
func (s *Service) Library(ctx context.Context) (models.Library, error) {
	return s.repo.LoadLibrary(ctx)
}

// UpdateRating sets the user rating on one item.
func (s *Service) UpdateRating(ctx context.Context, id string, rating int) error {
	if !models.ValidRating(rating) {
		return fmt.Errorf("%w: rating %d is out of range", ErrInvalidInput, rating)
	}
	return s.updateItem(ctx, id, func(item *models.LibraryItem) error {
		item.Rating = rating
		return nil
	})
}

// KeepItem resolves one orphan by marking it synced again.
func (s *Service) KeepItem(ctx context.Context, id string) error {
	lib, err := s.repo.LoadLibrary(ctx)
	if err != nil {
		return err
	}
	lib.Items = reconcile.Keep(lib.Items, id)
	return s.repo.ReplaceLibrary(ctx, lib)
}

// DeleteItem removes one item from the store and ledgers it.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	lib, err := s.repo.LoadLibrary(ctx)
	if err != nil {
		return err
	}
	ledger, err := s.repo.LoadLedger(ctx)
	if err != nil {
		return err
	}

	var updated []models.RetentionEntry
	lib.Items, updated = reconcile.Delete(lib.Items, ledger, id, time.Now().UTC())

	if err := s.repo.ReplaceLedger(ctx, updated); err != nil {
		return err
	}
	return s.repo.ReplaceLibrary(ctx, lib)
}

// AddComment appends a comment to one item.
func (s *Service) AddComment(ctx context.Context, id, text string) error {
	if text == "" {
		return fmt.Errorf("%w: empty comment", ErrInvalidInput)
	}
	return s.updateItem(ctx, id, func(item *models.LibraryItem) error {
		item.Comments = append(item.Comments, text)
		return nil
	})
}

// UpdateComment replaces the comment at the given index.
func (s *Service) UpdateComment(ctx context.Context, id string, index int, text string) error {
	if text == "" {
		return fmt.Errorf("%w: empty comment", ErrInvalidInput)
	}
	return s.updateItem(ctx, id, func(item *models.LibraryItem) error {
		if index < 0 || index >= len(item.Comments) {
			return fmt.Errorf("%w: comment index %d", ErrNotFound, index)
		}
		item.Comments[index] = text
		return nil
	})
}

// DeleteComment removes the comment at the given index, keeping the
// remaining indices dense.
func (s *Service) DeleteComment(ctx context.Context, id string, index int) error {
	return s.updateItem(ctx, id, func(item *models.LibraryItem) error {
		if index < 0 || index >= len(item.Comments) {
			return fmt.Errorf("%w: comment index %d", ErrNotFound, index)
		}
		item.Comments = append(item.Comments[:index], item.Comments[index+1:]...)
		return nil
	})
}

// Hype increments one of the hype counters. Counters only ever go up.
func (s *Service) Hype(ctx context.Context, id, direction string) error {
	if direction != "up" && direction != "down" {
		return fmt.Errorf("%w: direction %q", ErrInvalidInput, direction)
	}
	return s.updateItem(ctx, id, func(item *models.LibraryItem) error {
		if direction == "up" {
			item.HypeUp++
		} else {
			item.HypeDown++
		}
		return nil
	})
}

// Retention returns the full retention ledger.
func (s *Service) Retention(ctx context.Context) ([]models.RetentionEntry, error) {
	return s.repo.LoadLedger(ctx)
}

// RestoreItem drops an id from the ledger so the next sync can bring
// the video back.
func (s *Service) RestoreItem(ctx context.Context, id string) error {
	return s.repo.RemoveLedgerEntry(ctx, id)
}

// Settings returns the persisted settings.
func (s *Service) Settings(ctx context.Context) (models.Settings, error) {
	return s.repo.LoadSettings(ctx)
}

// SaveSettings validates and persists the settings document.
func (s *Service) SaveSettings(ctx context.Context, settings models.Settings) error {
	if !settings.RetentionPolicy.IsValid() {
		return fmt.Errorf("%w: retention policy %q", ErrInvalidInput, settings.RetentionPolicy)
	}
	return s.repo.SaveSettings(ctx, settings)
}

// Search evaluates a condition pair over the current store.
func (s *Service) Search(ctx context.Context, include, exclude []models.SearchCondition) ([]models.LibraryItem, error) {
	lib, err := s.repo.LoadLibrary(ctx)
	if err != nil {
		return nil, err
	}
	return query.Evaluate(lib.Items, include, exclude), nil
}

// Templates lists the saved search templates.
func (s *Service) Templates(ctx context.Context) ([]models.SearchTemplate, error) {
	return s.repo.ListTemplates(ctx)
}

// SaveTemplate stores a new named condition bundle and returns it.
func (s *Service) SaveTemplate(ctx context.Context, name string, include, exclude []models.SearchCondition) (models.SearchTemplate, error) {
	if name == "" {
		return models.SearchTemplate{}, fmt.Errorf("%w: empty template name", ErrInvalidInput)
	}
	tpl := models.SearchTemplate{
		ID:        uuid.NewString(),
		Name:      name,
		Include:   include,
		Exclude:   exclude,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.SaveTemplate(ctx, tpl); err != nil {
		return models.SearchTemplate{}, err
	}
	return tpl, nil
}

// DeleteTemplate removes a template by id.
func (s *Service) DeleteTemplate(ctx context.Context, id string) error {
	return s.repo.DeleteTemplate(ctx, id)
}

// updateItem loads the store, applies one mutation to the named item
// and replaces the whole document.
func (s *Service) updateItem(ctx context.Context, id string, mutate func(*models.LibraryItem) error) error {
	lib, err := s.repo.LoadLibrary(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range lib.Items {
		if lib.Items[i].YoutubeID == id {
			if err := mutate(&lib.Items[i]); err != nil {
				return err
			}
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return s.repo.ReplaceLibrary(ctx, lib)
}

func itemIDs(items []models.LibraryItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.YoutubeID)
	}
	return out
}
