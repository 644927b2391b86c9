// Package adapter demonstrates the Adapter pattern: a modern client speaks
// to a legacy uppercase-only printer through an adapter that translates the
// call it actually wants to make.
package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "adapter"
	intent = "Let a modern client drive a legacy interface it was not written for."
)

// printer is the interface the client was written against.
type printer interface {
	print(message string) string
}

// legacyPrinter only understands pre-uppercased input.
type legacyPrinter struct{}

func (legacyPrinter) printUpper(message string) string {
	return fmt.Sprintf("legacy printer prints: %s", message)
}

// legacyAdapter makes the legacy printer satisfy the printer interface.
type legacyAdapter struct {
	legacy legacyPrinter
}

func (a *legacyAdapter) print(message string) string {
	return a.legacy.printUpper(strings.ToUpper(message))
}

type example struct {
	target printer
}

func (e *example) Setup(ctx context.Context) error {
	if e.target == nil {
		e.target = &legacyAdapter{}
	}
	return nil
}

func (e *example) Run(ctx context.Context) ([]string, error) {
	message := "hello, world"
	return []string{
		fmt.Sprintf("client sends: %s", message),
		e.target.print(message),
	}, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Structural, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the adapter demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Structural,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
