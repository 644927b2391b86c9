package contract

import (
	"context"
	"fmt"
	"strings"
)

// Category classifies an example by the family its pattern belongs to.
type Category int

const (
	// Creational patterns deal with object construction (Singleton, Builder, ...).
	Creational Category = iota
	// Structural patterns deal with object composition (Adapter, Decorator, ...).
	Structural
	// Behavioral patterns deal with object collaboration (Strategy, Observer, ...).
	Behavioral
)

// String returns the lower-case name used in catalog files and CLI output.
func (c Category) String() string {
	switch c {
	case Creational:
		return "creational"
	case Structural:
		return "structural"
	case Behavioral:
		return "behavioral"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// ParseCategory converts a catalog string into a Category. The match is
// case-insensitive.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "creational":
		return Creational, nil
	case "structural":
		return Structural, nil
	case "behavioral":
		return Behavioral, nil
	default:
		return 0, fmt.Errorf("unknown category %q: must be 'creational', 'structural', or 'behavioral'", s)
	}
}

// Info identifies an example for reporting purposes.
type Info struct {
	// Name is the unique key the example is registered under.
	Name string
	// Category is the pattern family.
	Category Category
	// Intent is a one-line statement of what the pattern demonstrates.
	Intent string
}

// Example is the uniform shape of one pattern demonstration.
//
// Setup wires the example's collaborators together. It must be idempotent:
// calling it twice has the same effect as calling it once. It returns an
// error when a collaborator the example depends on cannot be constructed.
//
// Run executes the demonstration scenario end to end and returns the ordered
// human-readable lines it produced. Implementations must be deterministic
// for fixed inputs; anything resembling randomness must come from an
// injected deterministic source.
//
// Describe returns the example's identity and is safe to call at any point
// in the lifecycle, including before Setup.
type Example interface {
	Setup(ctx context.Context) error
	Run(ctx context.Context) ([]string, error)
	Describe() Info
}
