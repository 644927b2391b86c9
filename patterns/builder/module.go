// Package builder demonstrates the Builder pattern with the classic burger
// assembly: the same fluent builder produces differently configured burgers
// step by step.
package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "builder"
	intent = "Assemble a complex object step by step through a fluent builder."
)

type burger struct {
	bun      string
	patty    string
	toppings []string
}

func (b *burger) describe() string {
	parts := append([]string{b.bun, b.patty}, b.toppings...)
	return strings.Join(parts, " + ")
}

type burgerBuilder struct {
	result burger
}

func newBurgerBuilder() *burgerBuilder { return &burgerBuilder{} }

func (b *burgerBuilder) bun(kind string) *burgerBuilder {
	b.result.bun = kind
	return b
}

func (b *burgerBuilder) patty(kind string) *burgerBuilder {
	b.result.patty = kind
	return b
}

func (b *burgerBuilder) topping(kind string) *burgerBuilder {
	b.result.toppings = append(b.result.toppings, kind)
	return b
}

func (b *burgerBuilder) build() *burger { return &b.result }

type example struct{}

func (e *example) Setup(ctx context.Context) error { return nil }

func (e *example) Run(ctx context.Context) ([]string, error) {
	classic := newBurgerBuilder().
		bun("sesame bun").
		patty("beef patty").
		topping("cheddar").
		build()
	veggie := newBurgerBuilder().
		bun("wheat bun").
		patty("bean patty").
		build()

	return []string{
		fmt.Sprintf("classic burger: %s", classic.describe()),
		fmt.Sprintf("veggie burger: %s", veggie.describe()),
	}, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Creational, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the builder demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Creational,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
