package registry

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/MohamedBourass/patternbench/internal/contract"
)

// Entry holds everything the registry knows about one pattern example.
type Entry struct {
	// Name is the unique key the example is addressed by.
	Name string
	// Category is the pattern family, used by the list command.
	Category contract.Category
	// Intent is a one-line statement of the pattern's purpose.
	Intent string
	// New produces a fresh runnable instance. Each run gets its own
	// instance so examples never leak state between runs.
	New func() contract.Example
	// Expected is the ordered output the example must produce to count as
	// a success. Nil means the run is not verified against a transcript.
	Expected []string
}

// Module is the interface a pattern package implements to be registered.
type Module interface {
	Register(r *Registry) error
}

// Registry is the catalogue of all examples for a single application
// instance. Keys are unique and insertion order is preserved so that
// reporting is deterministic.
type Registry struct {
	index   map[string]int
	entries []Entry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register inserts an entry by name. Registering a name that already exists
// fails with a DuplicateNameError and leaves the registry unchanged.
func (r *Registry) Register(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("cannot register an example with an empty name")
	}
	if e.New == nil {
		return fmt.Errorf("example %q has no factory", e.Name)
	}
	if _, exists := r.index[e.Name]; exists {
		return &DuplicateNameError{Name: e.Name}
	}
	slog.Debug("Registering example.", "name", e.Name, "category", e.Category.String())
	r.index[e.Name] = len(r.entries)
	r.entries = append(r.entries, e)
	return nil
}

// Lookup returns the entry registered under name, or a NotFoundError.
func (r *Registry) Lookup(name string) (Entry, error) {
	i, ok := r.index[name]
	if !ok {
		return Entry{}, &NotFoundError{Name: name}
	}
	return r.entries[i], nil
}

// SetExpected attaches a verification transcript to an already-registered
// entry. The catalog loader calls this while overlaying catalog metadata
// onto the compiled-in registrations.
func (r *Registry) SetExpected(name string, lines []string) error {
	i, ok := r.index[name]
	if !ok {
		return &NotFoundError{Name: name}
	}
	r.entries[i].Expected = lines
	return nil
}

// All returns an iterator over the entries in registration order. The
// sequence is finite and restartable: each range over it starts from the
// first entry again.
func (r *Registry) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range r.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
