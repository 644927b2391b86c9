// Package flyweight demonstrates the Flyweight pattern: a forest of trees
// shares per-kind intrinsic state through a factory cache, so planting many
// trees allocates only as many kind records as there are distinct kinds.
//
// Kind selection is driven by an injected deterministic picker rather than
// randomness, keeping the demonstration reproducible run to run.
package flyweight

import (
	"context"
	"fmt"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "flyweight"
	intent = "Share heavyweight intrinsic state between many lightweight objects."
)

// treeKind is the shared intrinsic state: everything about a tree that does
// not depend on where it stands.
type treeKind struct {
	species string
}

// kindFactory caches treeKind records so equal species share one record.
type kindFactory struct {
	cache map[string]*treeKind
}

func (f *kindFactory) kindFor(species string) *treeKind {
	if kind, ok := f.cache[species]; ok {
		return kind
	}
	kind := &treeKind{species: species}
	f.cache[species] = kind
	return kind
}

// picker yields the next species index; injected so planting is deterministic.
type picker func() int

// sequencePicker cycles through a fixed index sequence.
func sequencePicker(indices []int) picker {
	next := 0
	return func() int {
		i := indices[next%len(indices)]
		next++
		return i
	}
}

type example struct {
	factory *kindFactory
	pick    picker
}

func (e *example) Setup(ctx context.Context) error {
	if e.factory == nil {
		e.factory = &kindFactory{cache: make(map[string]*treeKind)}
	}
	if e.pick == nil {
		e.pick = sequencePicker([]int{0, 1, 0, 0})
	}
	return nil
}

func (e *example) Run(ctx context.Context) ([]string, error) {
	species := []string{"oak", "pine"}
	var lines []string
	for i := 0; i < 4; i++ {
		kind := e.factory.kindFor(species[e.pick()])
		lines = append(lines, fmt.Sprintf("planted %s at (%d,%d)", kind.species, i, i*2))
	}
	lines = append(lines, fmt.Sprintf("tree kinds allocated: %d", len(e.factory.cache)))
	return lines, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Structural, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the flyweight demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Structural,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
