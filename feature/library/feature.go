package library

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
)

// Feature bundles the library service and handler for the loader.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature wires the repository, service and handler together.
func NewFeature(db *gorm.DB, fetcher Fetcher, logger *zap.Logger) *Feature {
	repo := NewRepository(db)
	service := NewService(repo, fetcher, logger)
	return &Feature{
		service: service,
		handler: NewHandler(service),
	}
}

// Name returns the feature name.
func (f *Feature) Name() string { return "library" }

// IsEnabled reports whether the feature should load. The library is the
// point of the application, so it is always on.
func (f *Feature) IsEnabled() bool { return true }

// Load migrates the backing tables and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Migrate creates or updates the backing tables. One-shot commands call
// this directly since they bypass Load.
func (f *Feature) Migrate() error {
	return f.service.repo.Migrate()
}

// Service exposes the library service for other features and commands.
func (f *Feature) Service() *Service { return f.service }
