// Package prototype demonstrates the Prototype pattern: new documents are
// produced by cloning a configured original, and editing a clone leaves the
// original untouched.
package prototype

import (
	"context"
	"fmt"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "prototype"
	intent = "Produce new objects by cloning a configured prototype."
)

type document struct {
	title   string
	version int
}

// clone returns an independent copy of the document.
func (d *document) clone() *document {
	copied := *d
	return &copied
}

func (d *document) String() string {
	return fmt.Sprintf("%s v%d", d.title, d.version)
}

type example struct {
	original *document
}

func (e *example) Setup(ctx context.Context) error {
	if e.original == nil {
		e.original = &document{title: "report", version: 1}
	}
	return nil
}

func (e *example) Run(ctx context.Context) ([]string, error) {
	copied := e.original.clone()
	lines := []string{
		fmt.Sprintf("original: %s", e.original),
		fmt.Sprintf("clone: %s", copied),
	}

	copied.version++
	lines = append(lines,
		fmt.Sprintf("clone after edit: %s", copied),
		fmt.Sprintf("original after edit: %s", e.original),
	)
	return lines, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Creational, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the prototype demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Creational,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
