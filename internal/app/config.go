package app

import (
	"errors"
	"fmt"
	"time"
)

// Commands the application understands.
const (
	CommandRun  = "run"
	CommandList = "list"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Command selects what the app does: CommandRun or CommandList.
	Command string
	// All runs every registered example. Mutually exclusive with Name.
	All bool
	// Name runs a single example. Mutually exclusive with All.
	Name string

	// CatalogPath is a directory of catalog .hcl files. Empty selects the
	// catalog embedded in the binary.
	CatalogPath string

	LogFormat string
	LogLevel  string
	// Timeout is the soft per-example time budget. Zero disables it.
	Timeout time.Duration
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command {
	case CommandRun:
		if cfg.All == (cfg.Name != "") {
			return nil, errors.New("run requires exactly one of --all or --name")
		}
	case CommandList:
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}
	return &cfg, nil
}
