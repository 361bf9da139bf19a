// Package thumbnail mirrors library item thumbnails into object storage.
//
// Upstream thumbnails disappear when a video is deleted or made private.
// Mirroring keeps a local copy in the configured bucket so the library UI
// stays intact for orphaned and deleted items.
//
// The feature is optional. It is only enabled when object storage is
// configured; without it the library simply serves the upstream URLs.
package thumbnail
