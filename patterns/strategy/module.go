// Package strategy demonstrates the Strategy pattern: the checkout runs the
// same purchase twice, swapping the payment algorithm between runs.
package strategy

import (
	"context"
	"fmt"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "strategy"
	intent = "Swap the payment algorithm at runtime without changing the checkout."
)

// paymentStrategy is the interchangeable algorithm.
type paymentStrategy interface {
	pay(amount int) string
}

type creditCard struct{}

func (creditCard) pay(amount int) string {
	return fmt.Sprintf("paid %d with credit card", amount)
}

type payPal struct{}

func (payPal) pay(amount int) string {
	return fmt.Sprintf("paid %d using PayPal", amount)
}

// checkout is the context that holds the currently selected strategy.
type checkout struct {
	method paymentStrategy
}

func (c *checkout) use(method paymentStrategy) { c.method = method }

func (c *checkout) purchase(amount int) string { return c.method.pay(amount) }

type example struct {
	cart *checkout
}

func (e *example) Setup(ctx context.Context) error {
	if e.cart == nil {
		e.cart = &checkout{method: creditCard{}}
	}
	return nil
}

func (e *example) Run(ctx context.Context) ([]string, error) {
	lines := []string{e.cart.purchase(15)}

	e.cart.use(payPal{})
	lines = append(lines, e.cart.purchase(15))

	// Restore the initial strategy so a repeated run replays identically.
	e.cart.use(creditCard{})
	return lines, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Behavioral, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the strategy demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Behavioral,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
