// Package chain demonstrates the Chain of Responsibility pattern: a support
// ticket travels down an escalation chain until a tier accepts it, and the
// end of the chain reports tickets nobody could resolve.
package chain

import (
	"context"
	"fmt"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "chain"
	intent = "Pass a request along handlers until one takes responsibility."
)

// tier is one link in the escalation chain.
type tier struct {
	title   string
	handles map[string]bool
	next    *tier
}

func (t *tier) handle(topic string) string {
	if t.handles[topic] {
		return fmt.Sprintf("%s resolved: %s", t.title, topic)
	}
	if t.next != nil {
		return t.next.handle(topic)
	}
	return fmt.Sprintf("nobody could resolve: %s", topic)
}

type example struct {
	head *tier
}

func (e *example) Setup(ctx context.Context) error {
	if e.head != nil {
		return nil
	}
	manager := &tier{
		title:   "manager",
		handles: map[string]bool{"refund request": true},
	}
	e.head = &tier{
		title:   "frontline",
		handles: map[string]bool{"password reset": true},
		next:    manager,
	}
	return nil
}

func (e *example) Run(ctx context.Context) ([]string, error) {
	var lines []string
	for _, topic := range []string{"password reset", "refund request", "quantum outage"} {
		lines = append(lines, e.head.handle(topic))
	}
	return lines, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Behavioral, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the chain of responsibility demonstration to the registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Behavioral,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
