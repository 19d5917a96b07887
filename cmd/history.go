package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/shelf/internal/repositories"
	"github.com/desertthunder/shelf/internal/shared"
	"github.com/desertthunder/shelf/internal/ui"
	"github.com/urfave/cli/v3"
)

// HistoryList prints recorded sync runs, most recent first.
func (r *Runner) HistoryList(ctx context.Context, cmd *cli.Command) error {
	limit := int(cmd.Int("limit"))
	if limit < 0 {
		return fmt.Errorf("%w: --limit must not be negative", shared.ErrInvalidFlag)
	}

	config, err := r.loadConfig(cmd, false)
	if err != nil {
		return err
	}
	db, err := r.requireDatabase(cmd, config)
	if err != nil {
		return err
	}
	defer db.Close()

	libraryPath := cmd.String("library")
	if libraryPath != "" {
		if libraryPath, err = shared.ExpandHome(libraryPath); err != nil {
			return err
		}
	}

	records, err := repositories.NewSyncRunRepository(db).List(libraryPath, limit)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(records, true)
	}

	if len(records) == 0 {
		return r.writePlain("No sync runs recorded\n")
	}
	for _, record := range records {
		if err := r.writePlain("%s  %s\n", r.palette.Help(record.ID), ui.FormatRun(r.palette, record.SyncRun)); err != nil {
			return err
		}
	}
	return nil
}

// HistoryShow prints a single sync run.
func (r *Runner) HistoryShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: run id", shared.ErrMissingArgument)
	}

	config, err := r.loadConfig(cmd, false)
	if err != nil {
		return err
	}
	db, err := r.requireDatabase(cmd, config)
	if err != nil {
		return err
	}
	defer db.Close()

	record, err := repositories.NewSyncRunRepository(db).Get(id)
	if err != nil {
		return err
	}
	return r.writeJSON(record, true)
}

// HistoryDelete removes a single sync run.
func (r *Runner) HistoryDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: run id", shared.ErrMissingArgument)
	}

	config, err := r.loadConfig(cmd, false)
	if err != nil {
		return err
	}
	db, err := r.requireDatabase(cmd, config)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.NewSyncRunRepository(db).Delete(id); err != nil {
		return err
	}
	r.logger.Info("deleted sync run", "id", id)
	return r.writePlain("Deleted %s\n", id)
}
