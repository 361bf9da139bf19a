// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the thumbnail mirror needs. This abstraction supports both AWS S3
// and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Bucket provisioning on startup.
//   - PutObject: Uploads a mirrored thumbnail.
//   - StatObject: Checks whether a thumbnail was already mirrored.
//   - GetObject: Streams a mirrored thumbnail back to the caller.
//   - RemoveObject: Drops the thumbnail of a deleted library item.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "media")
package storage
