package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/MohamedBourass/patternbench/internal/app"
	"github.com/MohamedBourass/patternbench/internal/cli"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

// main is the entrypoint for the patternbench application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	code, err := run(os.Stdout, os.Stderr, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}

// run encapsulates the main application logic for easier testing. It maps
// every outcome onto the documented exit codes: 0 all succeeded, 1 any
// example failed or errored, 2 usage errors and unknown example names.
func run(outW, logW io.Writer, args []string) (code int, err error) {
	// The app panics on critical startup errors (broken catalog, duplicate
	// registration), so we recover here to provide a clean exit.
	defer func() {
		if r := recover(); r != nil {
			code, err = 1, fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code, errors.New(exitErr.Message)
		}
		return 1, err
	}
	if shouldExit {
		return 0, nil
	}

	a := app.NewApp(outW, logW, cfg)
	ok, err := a.Run(context.Background())
	if err != nil {
		var notFound *registry.NotFoundError
		if errors.As(err, &notFound) {
			return 2, err
		}
		return 1, err
	}
	if !ok {
		return 1, nil
	}
	return 0, nil
}
