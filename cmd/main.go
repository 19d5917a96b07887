package main

import (
	"context"
	"os"

	"github.com/desertthunder/shelf/internal/shared"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

// exitIOErr matches EX_IOERR from sysexits.h.
const exitIOErr = 74

func main() {
	// BOOK_CONFIG and BOOK_OUTPUT may come from a local .env file
	_ = godotenv.Load()

	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{
		Logger:     logger,
		Output:     os.Stdout,
		Input:      os.Stdin,
		StdinPiped: !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()),
		Color:      isatty.IsTerminal(os.Stdout.Fd()),
	})

	if err := runner.app().Run(context.Background(), os.Args); err != nil {
		logger.Errorf("ERROR! %v", err)
		os.Exit(exitIOErr)
	}
}
