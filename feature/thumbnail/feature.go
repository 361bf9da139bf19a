package thumbnail

import (
	"context"

	"media-library/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the thumbnail mirror into the application.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the thumbnail feature. Pass a nil store to leave the
// feature disabled.
func NewFeature(store storage.Client, bucket string, items ItemSource, logger *zap.Logger) *Feature {
	f := &Feature{enabled: store != nil}
	if !f.enabled {
		return f
	}
	f.service = NewService(store, bucket, items, logger)
	f.handler = NewHandler(f.service)
	return f
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "thumbnail"
}

// IsEnabled reports whether object storage was configured.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load provisions the bucket and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.EnsureBucket(context.Background()); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the thumbnail service to other parts of the application.
func (f *Feature) Service() *Service {
	return f.service
}
