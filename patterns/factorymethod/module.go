// Package factorymethod demonstrates the Factory Method pattern: shape
// construction is deferred to per-kind factory functions so the drawing
// scenario never names a concrete shape type.
package factorymethod

import (
	"context"
	"fmt"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "factorymethod"
	intent = "Let a creator defer which concrete product it instantiates."
)

// shape is the product interface every factory produces.
type shape interface {
	draw() string
}

type circle struct{ radius int }

func (c *circle) draw() string { return fmt.Sprintf("drawing circle with radius %d", c.radius) }

type rectangle struct{ width, height int }

func (r *rectangle) draw() string { return fmt.Sprintf("drawing rectangle %dx%d", r.width, r.height) }

type example struct {
	factories map[string]func() shape
}

// Setup populates the factory table. Idempotent: a second call finds the
// table already built and leaves it alone.
func (e *example) Setup(ctx context.Context) error {
	if e.factories != nil {
		return nil
	}
	e.factories = map[string]func() shape{
		"circle":    func() shape { return &circle{radius: 3} },
		"rectangle": func() shape { return &rectangle{width: 4, height: 2} },
	}
	return nil
}

func (e *example) Run(ctx context.Context) ([]string, error) {
	var lines []string
	for _, kind := range []string{"circle", "rectangle"} {
		factory, ok := e.factories[kind]
		if !ok {
			return nil, fmt.Errorf("no factory for shape kind %q", kind)
		}
		lines = append(lines, factory().draw())
	}
	return lines, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Creational, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the factory method demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Creational,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
