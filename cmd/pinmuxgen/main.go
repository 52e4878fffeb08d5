package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/pinmuxgen/internal/app"
	"github.com/specialistvlad/pinmuxgen/internal/cli"
	"github.com/specialistvlad/pinmuxgen/internal/hcladapter"
	"github.com/specialistvlad/pinmuxgen/internal/registry"
)

// main is the entrypoint for the pinmuxgen application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		exitErr := exitError(err)
		fmt.Fprintln(os.Stderr, exitErr.Message)
		os.Exit(exitErr.Code)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Tables go to outW, logs and usage to errW.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader := hcladapter.NewLoader()
	pinmuxApp := app.NewApp(errW, appConfig, loader)

	return pinmuxApp.Run(context.Background(), outW)
}

// exitError maps an error to the process exit code and message.
func exitError(err error) *cli.ExitError {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	var missing *registry.MissingBlocksError
	if errors.As(err, &missing) {
		return &cli.ExitError{Code: cli.CodeMissingBlocks, Message: missing.Error()}
	}
	return &cli.ExitError{Code: cli.CodeFailure, Message: err.Error()}
}
