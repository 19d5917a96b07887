package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
	"github.com/urfave/cli/v3"
)

// readInput collects requested ISBNs: positional arguments first, then the --input file, then piped stdin.
//
// With none of them the request is empty.
func (r *Runner) readInput(cmd *cli.Command) ([]models.ISBN, error) {
	if args := cmd.Args().Slice(); len(args) > 0 {
		return models.ParseISBNs(args), nil
	}

	if cmd.IsSet("input") {
		file := cmd.String("input")
		if strings.TrimSpace(file) == "" {
			return nil, fmt.Errorf("%w: no input file provided", shared.ErrNoInput)
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot read from file %q: %v", shared.ErrReadInput, file, err)
		}
		r.logger.Debug("read input file", "path", file, "bytes", len(data))
		return models.ParseISBNText(string(data)), nil
	}

	if r.stdinPiped {
		data, err := io.ReadAll(r.input)
		if err != nil {
			return nil, fmt.Errorf("%w: impossible to read stdin: %v", shared.ErrReadInput, err)
		}
		r.logger.Debug("read stdin", "bytes", len(data))
		return models.ParseISBNText(string(data)), nil
	}

	return []models.ISBN{}, nil
}
