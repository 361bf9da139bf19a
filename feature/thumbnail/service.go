package thumbnail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"media-library/core/storage"
	"media-library/feature/library/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrNotFound is returned when no mirrored thumbnail exists for an item.
var ErrNotFound = errors.New("thumbnail not found")

// ItemSource provides the library items whose thumbnails are mirrored.
type ItemSource interface {
	Library(ctx context.Context) (models.Library, error)
}

// MirrorReport summarizes a mirror run.
type MirrorReport struct {
	Mirrored int `json:"mirrored"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// Service mirrors item thumbnails into object storage so the library keeps
// working when the upstream CDN drops an image.
type Service struct {
	store  storage.Client
	bucket string
	items  ItemSource
	client *http.Client
	logger *zap.Logger
}

// NewService creates a thumbnail service backed by the given storage client.
func NewService(store storage.Client, bucket string, items ItemSource, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		bucket: bucket,
		items:  items,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

func objectName(id string) string {
	return "thumbs/" + id + ".jpg"
}

// EnsureBucket creates the configured bucket if it does not exist yet.
func (s *Service) EnsureBucket(ctx context.Context) error {
	exists, err := s.store.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.store.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// MirrorAll downloads and stores the thumbnail of every library item that
// does not already have a mirrored copy. Download failures are counted and
// logged but do not abort the run.
func (s *Service) MirrorAll(ctx context.Context) (*MirrorReport, error) {
	lib, err := s.items.Library(ctx)
	if err != nil {
		return nil, err
	}

	report := &MirrorReport{}
	for _, item := range lib.Items {
		if item.ThumbnailURL == "" {
			report.Skipped++
			continue
		}

		// Already mirrored?
		if _, err := s.store.StatObject(ctx, s.bucket, objectName(item.YoutubeID), minio.StatObjectOptions{}); err == nil {
			report.Skipped++
			continue
		}

		if err := s.mirror(ctx, item); err != nil {
			report.Failed++
			s.logger.Warn("Failed to mirror thumbnail",
				zap.String("id", item.YoutubeID),
				zap.Error(err),
			)
			continue
		}
		report.Mirrored++
	}

	s.logger.Info("Thumbnail mirror finished",
		zap.Int("mirrored", report.Mirrored),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

func (s *Service) mirror(ctx context.Context, item models.LibraryItem) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.ThumbnailURL, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d fetching thumbnail", resp.StatusCode)
	}

	// Buffer the image; thumbnails are small and PutObject wants a size.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	_, err = s.store.PutObject(ctx, s.bucket, objectName(item.YoutubeID),
		bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

// Get streams the mirrored thumbnail of an item.
func (s *Service) Get(ctx context.Context, id string) (io.ReadCloser, error) {
	if _, err := s.store.StatObject(ctx, s.bucket, objectName(id), minio.StatObjectOptions{}); err != nil {
		return nil, ErrNotFound
	}
	return s.store.GetObject(ctx, s.bucket, objectName(id), minio.GetObjectOptions{})
}

// Remove deletes the mirrored thumbnail of an item, if any.
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.store.RemoveObject(ctx, s.bucket, objectName(id), minio.RemoveObjectOptions{})
}
