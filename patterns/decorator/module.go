// Package decorator demonstrates the Decorator pattern: optional extras are
// layered around a plain coffee, each wrapper adding to the price and the
// label without any subclassing.
package decorator

import (
	"context"
	"fmt"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "decorator"
	intent = "Layer optional behavior around a component without subclassing it."
)

// beverage is the component interface shared by the base drink and every
// wrapper. Prices are in cents so the arithmetic stays exact.
type beverage interface {
	label() string
	cost() int
}

type coffee struct{}

func (coffee) label() string { return "plain coffee" }
func (coffee) cost() int     { return 200 }

type milk struct {
	wrapped beverage
}

func (m milk) label() string { return m.wrapped.label() + " + milk" }
func (m milk) cost() int     { return m.wrapped.cost() + 50 }

type sprinkles struct {
	wrapped beverage
}

func (s sprinkles) label() string { return s.wrapped.label() + " + sprinkles" }
func (s sprinkles) cost() int     { return s.wrapped.cost() + 40 }

func priceLine(b beverage) string {
	cents := b.cost()
	return fmt.Sprintf("%s costs %d.%02d", b.label(), cents/100, cents%100)
}

type example struct{}

func (e *example) Setup(ctx context.Context) error { return nil }

func (e *example) Run(ctx context.Context) ([]string, error) {
	base := coffee{}
	withMilk := milk{wrapped: base}
	loaded := sprinkles{wrapped: withMilk}
	return []string{
		priceLine(base),
		priceLine(withMilk),
		priceLine(loaded),
	}, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Structural, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the decorator demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Structural,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
