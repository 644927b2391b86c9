// Package observer demonstrates the Observer pattern: a news agency pushes
// headlines to its subscribers, and unsubscribing stops the notifications.
package observer

import (
	"context"
	"fmt"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "observer"
	intent = "Notify subscribed listeners when the subject's state changes."
)

// subscriber receives headlines from the agency.
type subscriber interface {
	id() string
	receive(headline string) string
}

type reader struct {
	handle string
}

func (r *reader) id() string { return r.handle }

func (r *reader) receive(headline string) string {
	return fmt.Sprintf("%s received: %s", r.handle, headline)
}

// newsAgency is the subject. Subscribers are kept in subscription order so
// notification order is stable.
type newsAgency struct {
	subscribers []subscriber
}

func (a *newsAgency) subscribe(s subscriber) {
	a.subscribers = append(a.subscribers, s)
}

func (a *newsAgency) unsubscribe(id string) {
	for i, s := range a.subscribers {
		if s.id() == id {
			a.subscribers = append(a.subscribers[:i], a.subscribers[i+1:]...)
			return
		}
	}
}

func (a *newsAgency) publish(headline string) []string {
	var lines []string
	for _, s := range a.subscribers {
		lines = append(lines, s.receive(headline))
	}
	return lines
}

type example struct{}

func (e *example) Setup(ctx context.Context) error { return nil }

func (e *example) Run(ctx context.Context) ([]string, error) {
	agency := &newsAgency{}
	agency.subscribe(&reader{handle: "alice"})
	agency.subscribe(&reader{handle: "bob"})

	lines := agency.publish("breaking news")

	agency.unsubscribe("bob")
	lines = append(lines, "bob unsubscribed")
	lines = append(lines, agency.publish("weather update")...)
	return lines, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Behavioral, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the observer demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Behavioral,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
