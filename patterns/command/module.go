// Package command demonstrates the Command pattern: editor keystrokes are
// reified as command objects on a history stack, which is what makes undo
// possible at all.
package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "command"
	intent = "Reify an action as an object that can be queued and undone."
)

// editorCommand is an executable, reversible action on the buffer.
type editorCommand interface {
	execute() string
	undo() string
}

type buffer struct {
	words []string
}

type typeWord struct {
	target *buffer
	word   string
}

func (c *typeWord) execute() string {
	c.target.words = append(c.target.words, c.word)
	return fmt.Sprintf("typed: %s", c.word)
}

func (c *typeWord) undo() string {
	c.target.words = c.target.words[:len(c.target.words)-1]
	return fmt.Sprintf("undo: %s", c.word)
}

// editor invokes commands and keeps the history needed for undo.
type editor struct {
	content *buffer
	history []editorCommand
}

func (e *editor) apply(c editorCommand) string {
	e.history = append(e.history, c)
	return c.execute()
}

func (e *editor) undoLast() string {
	last := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	return last.undo()
}

type example struct{}

func (e *example) Setup(ctx context.Context) error { return nil }

func (e *example) Run(ctx context.Context) ([]string, error) {
	ed := &editor{content: &buffer{}}

	lines := []string{
		ed.apply(&typeWord{target: ed.content, word: "hello"}),
		ed.apply(&typeWord{target: ed.content, word: "world"}),
		ed.undoLast(),
		fmt.Sprintf("buffer: %s", strings.Join(ed.content.words, " ")),
	}
	return lines, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Behavioral, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the command demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Behavioral,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
