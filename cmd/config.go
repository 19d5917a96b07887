package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/shelf/internal/services"
	"github.com/desertthunder/shelf/internal/shared"
	"github.com/urfave/cli/v3"
)

func (r *Runner) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}
	return ctx, nil
}

// loadConfig reads the config named by --config.
//
// When the file does not exist and create is set, it is written from the example template first.
// Otherwise a missing file yields the defaults.
func (r *Runner) loadConfig(cmd *cli.Command, create bool) (*shared.Config, error) {
	if r.config != nil {
		return r.config, nil
	}

	path, err := shared.ExpandHome(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidConfig, err)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if !create {
			r.logger.Debug("config file not found, using defaults", "path", path)
			return shared.DefaultConfig(), nil
		}

		r.logger.Info("config file not found, creating from template", "path", path)
		if err := shared.CreateConfigFile(path); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrMissingConfig, err)
		}
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidConfig, err)
	}
	return config, nil
}

// libraryPath resolves the library file: --output (or BOOK_OUTPUT) wins over library.output.
func (r *Runner) libraryPath(cmd *cli.Command, config *shared.Config) (string, error) {
	path := config.Library.Output
	if cmd.IsSet("output") {
		path = cmd.String("output")
	}
	if path == "" {
		return "", fmt.Errorf("%w: library output path is empty", shared.ErrInvalidConfig)
	}
	return shared.ExpandHome(path)
}

// databasePath resolves the history database: --database wins over database.path. Empty means disabled.
func (r *Runner) databasePath(cmd *cli.Command, config *shared.Config) (string, error) {
	path := config.Database.Path
	if cmd.IsSet("database") {
		path = cmd.String("database")
	}
	if path == "" {
		return "", nil
	}
	return shared.ExpandHome(path)
}

// openDatabase opens the history database and applies pending migrations.
func (r *Runner) openDatabase(path string, config *shared.Config) (*sql.DB, error) {
	db, err := shared.NewDatabase(path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	applied, err := shared.RunMigrations(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if applied > 0 {
		r.logger.Debug("applied migrations", "count", applied, "path", path)
	}
	return db, nil
}

// requireDatabase opens the history database or fails when none is configured.
func (r *Runner) requireDatabase(cmd *cli.Command, config *shared.Config) (*sql.DB, error) {
	path, err := r.databasePath(cmd, config)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("%w: set database.path or pass --database", shared.ErrMissingConfig)
	}
	return r.openDatabase(path, config)
}

// newResolver returns the injected resolver or a Google Books client built from config.
func (r *Runner) newResolver(cmd *cli.Command, config *shared.Config) services.Resolver {
	if r.resolver != nil {
		return r.resolver
	}

	workers := config.Sync.Workers
	if cmd.IsSet("workers") {
		workers = int(cmd.Int("workers"))
	}

	client := r.httpClient
	if client == nil {
		client = &http.Client{Timeout: config.RequestTimeout()}
	}

	return services.NewGoogleBooksService(services.GoogleBooksOpts{
		BaseURL:    config.Google.BaseURL,
		APIKey:     config.Google.APIKey,
		HTTPClient: client,
		Workers:    workers,
		RateLimit:  config.Sync.RateLimit,
		Logger:     r.logger,
	})
}
