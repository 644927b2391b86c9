// Package abstractfactory demonstrates the Abstract Factory pattern: whole
// widget families (button + checkbox) are produced per platform without the
// scenario ever naming a concrete widget type.
package abstractfactory

import (
	"context"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "abstractfactory"
	intent = "Create families of related widgets without naming their concrete types."
)

type button interface {
	press() string
}

type checkbox interface {
	toggle() string
}

// widgetFactory produces one consistent widget family.
type widgetFactory interface {
	newButton() button
	newCheckbox() checkbox
}

type macButton struct{}

func (macButton) press() string { return "mac button pressed" }

type macCheckbox struct{}

func (macCheckbox) toggle() string { return "mac checkbox toggled" }

type macFactory struct{}

func (macFactory) newButton() button     { return macButton{} }
func (macFactory) newCheckbox() checkbox { return macCheckbox{} }

type linuxButton struct{}

func (linuxButton) press() string { return "linux button pressed" }

type linuxCheckbox struct{}

func (linuxCheckbox) toggle() string { return "linux checkbox toggled" }

type linuxFactory struct{}

func (linuxFactory) newButton() button     { return linuxButton{} }
func (linuxFactory) newCheckbox() checkbox { return linuxCheckbox{} }

type example struct {
	platforms []widgetFactory
}

func (e *example) Setup(ctx context.Context) error {
	if e.platforms != nil {
		return nil
	}
	e.platforms = []widgetFactory{macFactory{}, linuxFactory{}}
	return nil
}

func (e *example) Run(ctx context.Context) ([]string, error) {
	var lines []string
	for _, factory := range e.platforms {
		lines = append(lines, factory.newButton().press(), factory.newCheckbox().toggle())
	}
	return lines, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Creational, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the abstract factory demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Creational,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
