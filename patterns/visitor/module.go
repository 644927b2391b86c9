// Package visitor demonstrates the Visitor pattern over a closed set of
// shape variants. Instead of double-dispatch overloads, each shape carries
// a variant tag and the visitor dispatches through a single visit operation
// on that tag, so no open-ended runtime type inspection is involved.
package visitor

import (
	"context"
	"fmt"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "visitor"
	intent = "Run a new operation over a closed set of shape variants without changing them."
)

// shapeTag identifies which variant a shape is.
type shapeTag int

const (
	tagCircle shapeTag = iota
	tagRectangle
	tagTriangle
)

// shape is a tagged variant: the tag selects which dimension fields are
// meaningful.
type shape struct {
	tag shapeTag
	// circle
	radius int
	// rectangle
	width, height int
	// triangle
	a, b, c int
}

// xmlExporter is one operation over the shape set; adding another exporter
// means adding another visit function, not touching the shapes.
type xmlExporter struct{}

func (xmlExporter) visit(s shape) (string, error) {
	switch s.tag {
	case tagCircle:
		return fmt.Sprintf(`xml: <circle r="%d"/>`, s.radius), nil
	case tagRectangle:
		return fmt.Sprintf(`xml: <rect w="%d" h="%d"/>`, s.width, s.height), nil
	case tagTriangle:
		return fmt.Sprintf(`xml: <triangle a="%d" b="%d" c="%d"/>`, s.a, s.b, s.c), nil
	default:
		return "", fmt.Errorf("unknown shape tag %d", s.tag)
	}
}

type example struct {
	shapes []shape
}

func (e *example) Setup(ctx context.Context) error {
	if e.shapes == nil {
		e.shapes = []shape{
			{tag: tagCircle, radius: 3},
			{tag: tagRectangle, width: 4, height: 2},
			{tag: tagTriangle, a: 3, b: 4, c: 5},
		}
	}
	return nil
}

func (e *example) Run(ctx context.Context) ([]string, error) {
	exporter := xmlExporter{}
	var lines []string
	for _, s := range e.shapes {
		line, err := exporter.visit(s)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Behavioral, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the visitor demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Behavioral,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
