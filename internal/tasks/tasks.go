// package tasks implements the library sync operation.
//
// The core abstraction is SyncEngine, which filters requested ISBNs against the library,
// resolves the new ones and persists the merged library.
// Operations emit progress updates via channels for non-blocking status reporting to CLI layers.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/services"
	"github.com/desertthunder/shelf/internal/shared"
)

// Store loads and persists the library snapshot.
type Store interface {
	Load() *models.Library
	Save(library *models.Library) error
	Path() string
}

// RunRecorder persists the outcome of a sync.
//
// Recording is best effort: errors are logged and never fail the sync.
type RunRecorder interface {
	RecordRun(run *models.SyncRun) (string, error)
}

// SyncEngine defines the library sync operation.
type SyncEngine interface {
	// Sync resolves the requested ISBNs missing from the library, appends them and saves the library.
	Sync(ctx context.Context, progress chan<- ProgressUpdate, requested []models.ISBN) (*models.AppendStats, error)
}

// LibraryEngine implements SyncEngine.
//
// The engine exclusively owns its in-memory library, loaded once at construction.
type LibraryEngine struct {
	resolver services.Resolver
	store    Store
	recorder RunRecorder
	logger   *log.Logger
	library  *models.Library
}

// EngineOption configures optional [LibraryEngine] dependencies.
type EngineOption func(*LibraryEngine)

// WithRecorder records every sync through r.
func WithRecorder(r RunRecorder) EngineOption {
	return func(e *LibraryEngine) { e.recorder = r }
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) EngineOption {
	return func(e *LibraryEngine) { e.logger = l }
}

// NewLibraryEngine creates an engine and immediately loads the library from store.
func NewLibraryEngine(resolver services.Resolver, store Store, opts ...EngineOption) *LibraryEngine {
	e := &LibraryEngine{
		resolver: resolver,
		store:    store,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.library = store.Load()
	if e.library == nil {
		e.library = models.NewLibrary()
	}

	return e
}

// Library returns the in-memory library.
func (e *LibraryEngine) Library() *models.Library {
	return e.library
}

// sendProgress sends a progress update through the channel without blocking.
func (e *LibraryEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// IdentifyNew returns the requested ISBNs that are not in the library, in request order.
//
// Duplicates within requested are kept.
func (e *LibraryEngine) IdentifyNew(requested []models.ISBN) []models.ISBN {
	known := e.library.ISBNSet()
	filtered := make([]models.ISBN, 0, len(requested))
	for _, isbn := range requested {
		if _, ok := known[isbn]; ok {
			continue
		}
		filtered = append(filtered, isbn)
	}
	return filtered
}

// Sync filters, resolves, merges and saves.
//
// The returned stats are valid even when saving fails; the in-memory library
// keeps the merged volumes in that case.
func (e *LibraryEngine) Sync(ctx context.Context, progress chan<- ProgressUpdate, requested []models.ISBN) (*models.AppendStats, error) {
	startedAt := time.Now()

	e.sendProgress(progress, filterInputUpdate(len(requested)))
	filtered := e.IdentifyNew(requested)
	e.logger.Info("filtered input", "requested", len(requested), "new", len(filtered))

	var resolved []models.Volume
	if len(filtered) > 0 {
		e.sendProgress(progress, resolveVolumesUpdate(len(filtered), e.resolver.Name()))
		resolved = e.resolver.ResolveMany(ctx, filtered)
	}

	stats := &models.AppendStats{
		InputList:  len(requested),
		NewVolumes: len(resolved),
	}

	e.sendProgress(progress, mergeVolumesUpdate(stats.NewVolumes, len(filtered)))
	e.library.Append(resolved...)

	e.sendProgress(progress, saveLibraryUpdate(e.library.Len(), e.store.Path()))
	err := e.store.Save(e.library)
	if err != nil {
		if !errors.Is(err, shared.ErrSaveLibrary) {
			err = fmt.Errorf("%w: %w", shared.ErrSaveLibrary, err)
		}
		e.logger.Error("failed to save library", "path", e.store.Path(), "error", err)
	}

	e.record(models.NewSyncRun(e.store.Path(), *stats, startedAt, err))
	return stats, err
}

func (e *LibraryEngine) record(run *models.SyncRun) {
	if e.recorder == nil {
		return
	}
	id, err := e.recorder.RecordRun(run)
	if err != nil {
		e.logger.Warn("failed to record sync run", "error", err)
		return
	}
	e.logger.Debug("sync run recorded", "id", id)
}
