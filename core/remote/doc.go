// Package remote talks to the YouTube Data API v3 to obtain the
// complete liked-videos snapshot that drives a library sync.
//
// The client pages through the "LL" playlist and optionally batches a
// second pass over the videos endpoint for tags, duration and topic
// categories. It resolves every fetch to either a complete snapshot or
// an error; the sync service never reconciles a partial one.
package remote
