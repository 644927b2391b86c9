package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MohamedBourass/patternbench/internal/ctxlog"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

// errBudgetExceeded marks a stage that outlived the per-example time budget.
var errBudgetExceeded = errors.New("time budget exceeded")

// Runner executes registered examples strictly sequentially, in
// registration order, and converts every outcome into a Result.
type Runner struct {
	reg *registry.Registry
	// budget is the soft per-example time limit. A stage that overruns it
	// yields StatusErrored instead of hanging the batch. Zero disables the
	// watchdog entirely.
	budget time.Duration
}

// New creates a Runner over reg with the given per-example time budget.
func New(reg *registry.Registry, budget time.Duration) *Runner {
	return &Runner{reg: reg, budget: budget}
}

// RunOne looks up the named example, executes it, and returns its Result.
// The only error it can return is a registry.NotFoundError for an unknown
// name; every failure of the example itself is captured inside the Result.
func (r *Runner) RunOne(ctx context.Context, name string) (Result, error) {
	entry, err := r.reg.Lookup(name)
	if err != nil {
		return Result{}, err
	}
	return r.execute(ctx, entry), nil
}

// RunAll executes every registered example in registration order and
// returns one Result per entry. The batch continues past individual
// failures: a broken example yields a failed or errored Result and the
// remaining examples still run.
func (r *Runner) RunAll(ctx context.Context) []Result {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting batch run.", "examples", r.reg.Len())

	results := make([]Result, 0, r.reg.Len())
	for entry := range r.reg.All() {
		results = append(results, r.execute(ctx, entry))
	}

	logger.Debug("Batch run finished.", "results", len(results))
	return results
}

// execute drives a single example through the run lifecycle:
// pending -> setup -> running -> {succeeded | failed | errored}.
func (r *Runner) execute(ctx context.Context, entry registry.Entry) Result {
	logger := ctxlog.FromContext(ctx).With("example", entry.Name)
	state := newRunState()
	start := time.Now()

	result := Result{Name: entry.Name, Intent: entry.Intent}
	example := entry.New()

	state.to(phaseSetup)
	logger.Debug("Setting up example.")
	if err := r.stage(ctx, example.Setup); err != nil {
		state.to(phaseErrored)
		logger.Error("Example setup failed.", "error", err)
		result.Status = StatusErrored
		result.Detail = fmt.Sprintf("setup: %v", err)
		result.Duration = time.Since(start)
		return result
	}

	state.to(phaseRunning)
	logger.Debug("Running example.")
	var output []string
	err := r.stage(ctx, func(stageCtx context.Context) error {
		var runErr error
		output, runErr = example.Run(stageCtx)
		return runErr
	})
	result.Output = output
	result.Duration = time.Since(start)

	switch {
	case errors.Is(err, errBudgetExceeded):
		state.to(phaseErrored)
		logger.Error("Example exceeded its time budget.", "budget", r.budget)
		result.Status = StatusErrored
		result.Detail = err.Error()
	case err != nil:
		state.to(phaseFailed)
		logger.Error("Example run failed.", "error", err)
		result.Status = StatusFailed
		result.Detail = fmt.Sprintf("run: %v", err)
	default:
		if mismatch := verify(output, entry.Expected); mismatch != nil {
			state.to(phaseFailed)
			logger.Error("Example output did not match expected transcript.", "error", mismatch)
			result.Status = StatusFailed
			result.Detail = mismatch.Error()
		} else {
			state.to(phaseSucceeded)
			logger.Debug("Example succeeded.", "lines", len(output))
			result.Status = StatusSuccess
		}
	}
	return result
}

// stage invokes fn under the per-example time budget. On overrun the
// stalled goroutine is abandoned with a cancelled context and the stage
// reports errBudgetExceeded; examples are expected to be in-memory
// computations, so this is a defensive bound rather than a cancellation
// protocol.
func (r *Runner) stage(ctx context.Context, fn func(context.Context) error) error {
	if r.budget <= 0 {
		return fn(ctx)
	}

	stageCtx, cancel := context.WithTimeout(ctx, r.budget)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- fn(stageCtx)
	}()

	select {
	case err := <-done:
		return err
	case <-stageCtx.Done():
		if errors.Is(stageCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", errBudgetExceeded, r.budget)
		}
		return stageCtx.Err()
	}
}
