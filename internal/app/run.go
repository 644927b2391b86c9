package app

import (
	"context"
	"fmt"

	"github.com/MohamedBourass/patternbench/internal/ctxlog"
	"github.com/MohamedBourass/patternbench/internal/report"
	"github.com/MohamedBourass/patternbench/internal/runner"
)

// Run executes the configured command. The returned bool reports whether
// every attempted example succeeded; the error carries registry-level
// failures only (an unknown --name), never individual example failures —
// those are contained in the rendered results.
func (a *App) Run(ctx context.Context) (bool, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	switch a.config.Command {
	case CommandList:
		return true, a.list()
	case CommandRun:
		if a.config.All {
			return a.runAll(ctx)
		}
		return a.runOne(ctx, a.config.Name)
	default:
		// NewConfig rejects anything else.
		return false, fmt.Errorf("unknown command %q", a.config.Command)
	}
}

// list prints each registered example's name and category, one per line,
// in registration order.
func (a *App) list() error {
	for entry := range a.registry.All() {
		if _, err := fmt.Fprintf(a.outW, "%s\t%s\n", entry.Name, entry.Category); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) runAll(ctx context.Context) (bool, error) {
	a.logger.Info("Running all registered examples.", "count", a.registry.Len())
	results := a.runner.RunAll(ctx)
	if err := report.Render(a.outW, results); err != nil {
		return false, err
	}
	return report.Summarize(results).AllSucceeded(), nil
}

func (a *App) runOne(ctx context.Context, name string) (bool, error) {
	a.logger.Info("Running one example.", "name", name)
	result, err := a.runner.RunOne(ctx, name)
	if err != nil {
		return false, err
	}
	if err := report.Render(a.outW, []runner.Result{result}); err != nil {
		return false, err
	}
	return result.Status == runner.StatusSuccess, nil
}
