// Package facade demonstrates the Facade pattern: one watchMovie entry
// point hides the amplifier/projector/screen choreography from the caller.
package facade

import (
	"context"
	"fmt"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "facade"
	intent = "Hide a subsystem behind one intention-revealing entry point."
)

type amplifier struct{}

func (amplifier) setVolume(level int) string {
	return fmt.Sprintf("amplifier: volume set to %d", level)
}

type projector struct{}

func (projector) setInput(input string) string {
	return fmt.Sprintf("projector: input set to %s", input)
}

type screen struct{}

func (screen) lower() string { return "screen: lowered" }

// homeTheater is the facade over the three subsystem components.
type homeTheater struct {
	amp    amplifier
	beamer projector
	canvas screen
}

func (h *homeTheater) watchMovie(title string) []string {
	return []string{
		h.amp.setVolume(5),
		h.beamer.setInput("hdmi"),
		h.canvas.lower(),
		fmt.Sprintf("movie started: %s", title),
	}
}

type example struct {
	theater *homeTheater
}

func (e *example) Setup(ctx context.Context) error {
	if e.theater == nil {
		e.theater = &homeTheater{}
	}
	return nil
}

func (e *example) Run(ctx context.Context) ([]string, error) {
	return e.theater.watchMovie("The Matrix"), nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Structural, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the facade demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Structural,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
