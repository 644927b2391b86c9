package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/MohamedBourass/patternbench/internal/catalog"
	"github.com/MohamedBourass/patternbench/internal/ctxlog"
	"github.com/MohamedBourass/patternbench/internal/registry"
	"github.com/MohamedBourass/patternbench/internal/runner"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	runner   *runner.Runner
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger and a registry populated
// from the given modules (or the compiled-in default set) and reconciled
// against the catalog. All registration happens here, before any example
// can run, so the registry is read-only by the time Run is called.
//
// Startup configuration errors (duplicate registration, unreadable or
// inconsistent catalog) are programmer or packaging errors, so NewApp
// panics; the CLI entrypoint recovers and turns the panic into a clean
// exit.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		if err := mod.Register(reg); err != nil {
			panic(fmt.Errorf("module registration failed: %w", err))
		}
	}
	logger.Debug("All pattern modules registered.", "count", reg.Len())

	fsys := catalog.Default()
	if cfg.CatalogPath != "" {
		fsys = os.DirFS(cfg.CatalogPath)
	}
	defs, err := catalog.Load(ctx, fsys)
	if err != nil {
		panic(fmt.Errorf("failed to load catalog: %w", err))
	}
	if err := catalog.Apply(ctx, reg, defs); err != nil {
		// Mismatch between the Go modules and the catalog is a programmer
		// error, so we panic.
		panic(err)
	}
	logger.Debug("Catalog applied and parity check passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		runner:   runner.New(reg, cfg.Timeout),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
