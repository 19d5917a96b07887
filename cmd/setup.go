package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/shelf/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the example configuration to --config.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path, err := shared.ExpandHome(cmd.String("config"))
	if err != nil {
		return err
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.logger.Info("config file created", "path", path)

	r.writePlain("%s %s\n", r.palette.OK("Config written to"), path)
	r.writePlainln("Next steps:")
	r.writePlain("1. Set google.api_key in %s\n", path)
	r.writePlain("2. Run 'shelf fetch <isbn>' to add a volume to your library\n")
	return nil
}

// SetupDatabase initializes the database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd, true)
	if err != nil {
		return err
	}

	path, err := r.databasePath(cmd, config)
	if err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("%w: set database.path or pass --database", shared.ErrMissingConfig)
	}

	r.logger.Info("initializing database", "path", path)

	db, err := shared.NewDatabase(path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	r.logger.Info("running database migrations")
	applied, err := shared.RunMigrations(db)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := shared.CurrentVersion(db)
	if err != nil {
		return err
	}

	r.logger.Infof("setup complete for database: %v", path)
	return r.writePlain("%s %s (applied %d migrations, version %d)\n", r.palette.OK("Database ready:"), path, applied, version)
}
