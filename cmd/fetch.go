package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/shelf/internal/repositories"
	"github.com/desertthunder/shelf/internal/shared"
	"github.com/desertthunder/shelf/internal/storage"
	"github.com/desertthunder/shelf/internal/tasks"
	"github.com/desertthunder/shelf/internal/ui"
	"github.com/urfave/cli/v3"
)

// Fetch resolves requested ISBNs missing from the library and saves the result.
func (r *Runner) Fetch(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd, true)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	isbns, err := r.readInput(cmd)
	if err != nil {
		return fmt.Errorf("input data error: %w", err)
	}

	path, err := r.libraryPath(cmd, config)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	store := storage.NewLibraryStore(path, r.logger)
	opts := []tasks.EngineOption{tasks.WithLogger(shared.WithLogger(r.logger, "component", "engine"))}

	if dbPath, err := r.databasePath(cmd, config); err != nil {
		r.logger.Warn("sync history disabled", "error", err)
	} else if dbPath != "" {
		db, err := r.openDatabase(dbPath, config)
		if err != nil {
			r.logger.Warn("sync history disabled", "error", err)
		} else {
			defer db.Close()
			recorder := repositories.NewSyncRunRecorder(repositories.NewSyncRunRepository(db))
			opts = append(opts, tasks.WithRecorder(recorder))
		}
	}

	engine := tasks.NewLibraryEngine(r.newResolver(cmd, config), store, opts...)
	r.logger.Info("starting sync", "requested", len(isbns), "library", path, "volumes", engine.Library().Len())

	progressCh := make(chan tasks.ProgressUpdate, 10)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			r.logger.Debug(ui.FormatProgress(ui.PlainPalette(), update.Step, update.Total, update.Message), "phase", update.Phase)
		}
	}()

	stats, err := engine.Sync(ctx, progressCh, isbns)
	close(progressCh)
	<-done

	if err != nil {
		return fmt.Errorf("runtime error: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(stats, false)
	}
	return ui.WriteSummary(r.output, r.palette, *stats)
}
