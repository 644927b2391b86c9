// Package singleton demonstrates the Singleton pattern: one process-scoped
// configuration store constructed exactly once behind a sync.Once gate.
package singleton

import (
	"context"
	"fmt"
	"sync"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "singleton"
	intent = "Ensure a type has one instance and provide a single access point to it."
)

// configStore is the shared value the whole process agrees on.
type configStore struct {
	settings map[string]string
}

var (
	once     sync.Once
	instance *configStore
)

// sharedStore returns the process-wide store, constructing it exactly once
// regardless of how many callers race on first access.
func sharedStore() *configStore {
	once.Do(func() {
		instance = &configStore{settings: map[string]string{"mode": "demo"}}
	})
	return instance
}

type example struct{}

func (e *example) Setup(ctx context.Context) error { return nil }

func (e *example) Run(ctx context.Context) ([]string, error) {
	first := sharedStore()
	second := sharedStore()
	return []string{
		fmt.Sprintf("instance-1==instance-2: %t", first == second),
	}, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Creational, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the singleton demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Creational,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
