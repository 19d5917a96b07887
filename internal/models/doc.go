// Package models defines the domain entities for the shelf library sync tool.
//
// The package contains two categories of types:
//
// 1. Library entities, serialized into the JSON library file
//   - [ISBN] : Normalized book identifier used as the library key
//   - [Volume] : Book metadata resolved from the lookup service
//   - [Library] : Ordered collection of volumes
//   - [AppendStats] : Counters reported by a sync run
//
// 2. Persistent entities, stored in the optional SQLite history database
//   - [SyncRun] : One execution of the sync engine with its outcome
//
// [Volume] values are created by the lookup service only. After creation the
// only permitted change is back-filling the requested [ISBN].
package models
