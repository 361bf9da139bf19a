// Package reconcile merges a freshly fetched remote snapshot into the
// locally persisted library without ever touching user annotations.
//
// The engine is deliberately pure: Merge and the disposition operations
// take values and return values, performing no I/O and holding no
// state. The caller (the library service) is responsible for loading a
// consistent store/ledger snapshot before a merge and for persisting
// the returned replacement afterwards.
//
// # Ownership split
//
// Every sync overwrites the descriptive fields (title, channel,
// thumbnail, tags, duration, topics) from the snapshot, because the
// remote source is authoritative for them. Ratings, comments and hype
// counters belong to the user and survive any number of syncs, as does
// the original AddedAt timestamp.
//
// # Orphans and the retention ledger
//
// An item that disappears from the remote snapshot is not deleted; it
// is flagged Synced=false and reported once. The disposition operations
// (KeepAll, DeleteAll, Keep, Delete) resolve orphans explicitly.
// Deleting writes the id into the retention ledger, which Merge
// consults to keep removed videos from coming back when the user likes
// them again upstream.
package reconcile
