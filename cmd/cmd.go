// submodule cmd contains command definitions
package main

import (
	"github.com/desertthunder/shelf/internal/shared"
	"github.com/urfave/cli/v3"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   shared.DefaultConfigPath,
		Sources: cli.EnvVars("BOOK_CONFIG"),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Path to the library file (default: library.output from config)",
		Sources: cli.EnvVars("BOOK_OUTPUT"),
	}
}

func databaseFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "database",
		Usage: "Path to the sync history database (default: database.path from config)",
	}
}

// fetchCommand resolves ISBNs and appends them to the library
func fetchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Fetch volumes for ISBNs missing from the library",
		ArgsUsage: "[isbn...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "File with ISBNs separated by spaces or newlines",
			},
			outputFlag(),
			configFlag(),
			databaseFlag(),
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Concurrent lookups (default: sync.workers from config)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output stats as JSON",
			},
		},
		Action: r.Fetch,
	}
}

// libraryCommand inspects and exports the library file
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "library",
		Aliases: []string{"lib"},
		Usage:   "Library operations",
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List volumes in the library",
				Flags: []cli.Flag{
					outputFlag(),
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.LibraryList,
			},
			{
				Name:  "export",
				Usage: "Export the library to CSV, Markdown or plain text",
				Flags: []cli.Flag{
					outputFlag(),
					configFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, markdown, txt or yaml",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:  "file",
						Usage: "Destination file (default: library.{ext})",
					},
				},
				Action: r.LibraryExport,
			},
			{
				Name:  "serve",
				Usage: "Serve the library as read-only JSON over HTTP",
				Flags: []cli.Flag{
					outputFlag(),
					configFlag(),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: "127.0.0.1:8080",
					},
				},
				Action: r.LibraryServe,
			},
		},
	}
}

// historyCommand reads recorded sync runs
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show recorded sync runs",
		Flags: []cli.Flag{
			configFlag(),
			databaseFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of runs to show",
				Value: 20,
			},
			&cli.StringFlag{
				Name:  "library",
				Usage: "Only show runs for this library file",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.HistoryList,
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show a single sync run",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					configFlag(),
					databaseFlag(),
				},
				Action: r.HistoryShow,
			},
			{
				Name:  "delete",
				Usage: "Delete a sync run",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					configFlag(),
					databaseFlag(),
				},
				Action: r.HistoryDelete,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write the example configuration file",
				Flags: []cli.Flag{
					configFlag(),
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					configFlag(),
					databaseFlag(),
				},
				Action: r.SetupDatabase,
			},
		},
	}
}
