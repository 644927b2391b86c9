package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MohamedBourass/patternbench/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usage is the top-level help text printed when no command is given.
func usage(output io.Writer) {
	fmt.Fprint(output, `
patternbench - a uniform harness for running design pattern demonstrations.

Usage:
  patternbench run (--all | --name <pattern>) [options]
  patternbench list [options]

Commands:
  run     Execute registered pattern examples and report one line per example.
  list    Print each registered example's name and category, one per line.

Run 'patternbench <command> -h' for the command's options.
`)
}

// Parse processes command-line arguments. It returns a populated app
// Config, a boolean indicating the program should exit cleanly (help was
// requested), or an ExitError carrying the exit code for invalid usage.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	if len(args) == 0 {
		usage(output)
		return nil, true, nil
	}

	command := args[0]
	switch command {
	case "run", "list":
	case "-h", "--help", "help":
		usage(output)
		return nil, true, nil
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q: expected 'run' or 'list'", command)}
	}

	flagSet := flag.NewFlagSet("patternbench "+command, flag.ContinueOnError)
	flagSet.SetOutput(output)

	var allFlag *bool
	var nameFlag *string
	if command == "run" {
		allFlag = flagSet.Bool("all", false, "Run every registered example.")
		nameFlag = flagSet.String("name", "", "Run the single example registered under this name.")
	}
	catalogFlag := flagSet.String("catalog", "", "Directory of catalog .hcl files. Empty uses the embedded catalog.")
	timeoutFlag := flagSet.Duration("timeout", 5*time.Second, "Soft per-example time budget. 0 disables it.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg := app.Config{
		Command:     command,
		CatalogPath: *catalogFlag,
		Timeout:     *timeoutFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	}
	if command == "run" {
		cfg.All = *allFlag
		cfg.Name = *nameFlag
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return validated, false, nil
}
