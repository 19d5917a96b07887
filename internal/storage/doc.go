// Package storage persists the library as a pretty-printed JSON document.
//
// The document holds every volume under a single "volumes" field. [LibraryStore.Load]
// never fails: a missing, empty or corrupt file is read as an empty library.
// [LibraryStore.Save] rewrites the whole file through a temporary sibling and a
// rename, serialized across processes by a lock file next to the library.
package storage
