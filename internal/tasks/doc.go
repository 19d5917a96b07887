// Package tasks synchronizes a book library with requested ISBNs, reporting progress in real time.
//
// # Core Operation
//
// The [SyncEngine] interface defines a single operation, [SyncEngine.Sync]:
//
//  1. Filter the requested ISBNs against the ISBNs already in the library
//  2. Resolve the remaining ISBNs through a [services.Resolver]
//  3. Append the resolved volumes to the library, in resolver order
//  4. Persist the full library through the [Store]
//
// An empty filtered list performs no remote calls. The library is saved on every sync,
// so a sync with nothing new still rewrites the file.
//
// # Progress Reporting
//
// Sync uses a non-blocking channel for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data.
// Updates use select with default to prevent blocking.
//
// # Run History
//
// The optional [RunRecorder] interface persists each sync (repositories.SyncRunRecorder).
// Recording errors are logged and ignored so they never fail a sync.
package tasks
