package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
	"github.com/gofrs/flock"
)

const (
	lockTimeout   = 3 * time.Second
	lockRetry     = 100 * time.Millisecond
	libraryPerms  = 0644
	libraryIndent = "  "
)

// LibraryStore loads and saves a [models.Library] at a fixed path.
type LibraryStore struct {
	path     string
	fileLock *flock.Flock
	logger   *log.Logger
}

// NewLibraryStore creates a store for the library file at path. A nil logger discards output.
func NewLibraryStore(path string, logger *log.Logger) *LibraryStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &LibraryStore{
		path:     path,
		fileLock: flock.New(path + ".lock"),
		logger:   logger.With("store", path),
	}
}

// Path returns the library file location.
func (s *LibraryStore) Path() string {
	return s.path
}

// Load reads the library from disk.
//
// Missing, unreadable, empty and corrupt files all yield an empty library.
func (s *LibraryStore) Load() *models.Library {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("library not found, starting empty")
		return models.NewLibrary()
	}
	if err != nil {
		s.logger.Warn("library unreadable, starting empty", "error", err)
		return models.NewLibrary()
	}
	if len(data) == 0 {
		return models.NewLibrary()
	}

	var library models.Library
	if err := json.Unmarshal(data, &library); err != nil {
		s.logger.Warn("library corrupt, starting empty", "error", err)
		return models.NewLibrary()
	}
	if library.Volumes == nil {
		library.Volumes = []models.Volume{}
	}

	s.logger.Debug("library loaded", "volumes", library.Len())
	return &library
}

// Save overwrites the library file with the full contents of library.
//
// Errors wrap [shared.ErrSaveLibrary].
func (s *LibraryStore) Save(library *models.Library) error {
	if library == nil {
		library = models.NewLibrary()
	}

	data, err := json.MarshalIndent(library, "", libraryIndent)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal library: %v", shared.ErrSaveLibrary, err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create directory: %v", shared.ErrSaveLibrary, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return fmt.Errorf("%w: %w: %v", shared.ErrSaveLibrary, shared.ErrLockLibrary, err)
	}
	if !locked {
		return fmt.Errorf("%w: %w", shared.ErrSaveLibrary, shared.ErrLockLibrary)
	}
	defer func() { _ = s.fileLock.Unlock() }()

	tmpFile := s.path + ".tmp"
	if err := os.WriteFile(tmpFile, append(data, '\n'), libraryPerms); err != nil {
		return fmt.Errorf("%w: failed to write temp file: %v", shared.ErrSaveLibrary, err)
	}

	if err := os.Rename(tmpFile, s.path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("%w: failed to rename file: %v", shared.ErrSaveLibrary, err)
	}

	s.logger.Debug("library saved", "volumes", library.Len())
	return nil
}
