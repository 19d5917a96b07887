// Package repositories implements SQLite persistence for sync history.
//
// Key Implementations:
//   - [SyncRunRepository] : One row per sync engine run with counters and outcome
//   - [SyncRunRecorder] : Adapter letting the sync engine record runs
//
// Sequence numbers provide stable, human-readable ordering (e.g., run #42) independent of UUIDs and timestamps.
// Sequence numbers come from one-row counter tables, bumped in the same transaction as the insert they number.
package repositories
