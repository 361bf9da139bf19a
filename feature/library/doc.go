// Package library is the curated video library: the reconciled item
// store, its retention ledger, user annotations and the search surface.
//
// The package splits into a pure core and an I/O shell. The core lives
// in the reconcile and query subpackages and works on plain values.
// The shell — Repository, Service, Handler — loads whole documents from
// the database, runs the core, and replaces the documents. No partial
// writes happen anywhere: every persisted mutation goes through a full
// load/replace cycle, which is what lets the engines stay pure.
//
// Concurrent syncs against the same store must be serialized by the
// caller; the engines do not detect concurrent-write conflicts.
package library
