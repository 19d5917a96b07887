package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/shelf/internal/formatter"
	"github.com/desertthunder/shelf/internal/storage"
	"github.com/desertthunder/shelf/internal/ui"
	"github.com/urfave/cli/v3"
)

func (r *Runner) openLibrary(cmd *cli.Command) (*storage.LibraryStore, error) {
	config, err := r.loadConfig(cmd, false)
	if err != nil {
		return nil, err
	}
	path, err := r.libraryPath(cmd, config)
	if err != nil {
		return nil, err
	}
	return storage.NewLibraryStore(path, r.logger), nil
}

// LibraryList prints the volumes in the library.
func (r *Runner) LibraryList(ctx context.Context, cmd *cli.Command) error {
	store, err := r.openLibrary(cmd)
	if err != nil {
		return err
	}

	library := store.Load()
	if cmd.Bool("json") {
		return r.writeJSON(library, cmd.Bool("pretty"))
	}

	if library.Len() == 0 {
		return r.writePlain("No volumes in %s\n", store.Path())
	}

	if err := r.writePlain("%s\n\n", r.palette.Title(fmt.Sprintf("%s (%d volumes)", store.Path(), library.Len()))); err != nil {
		return err
	}
	for i, v := range library.Volumes {
		if err := r.writePlain("%s\n", ui.FormatVolume(r.palette, i+1, v)); err != nil {
			return err
		}
	}
	return nil
}

// LibraryExport writes the library in the requested format.
func (r *Runner) LibraryExport(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	store, err := r.openLibrary(cmd)
	if err != nil {
		return err
	}

	library := store.Load()
	r.logger.Info("exporting library", "path", store.Path(), "format", format, "volumes", library.Len())

	written, err := formatter.WriteExport(library, format, cmd.String("file"))
	if err != nil {
		return err
	}

	return r.writePlain("%s %d volumes to %s\n", r.palette.OK("Exported"), library.Len(), written)
}
