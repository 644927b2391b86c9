// Package state demonstrates the State pattern: a media player delegates
// button presses to its current state object, and the state object decides
// what happens and which state comes next.
package state

import (
	"context"
	"fmt"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "state"
	intent = "Change an object's behavior by switching its internal state."
)

// playerState handles one button press and returns the successor state.
type playerState interface {
	label() string
	press(button string) (playerState, string)
}

type idleState struct{}

func (idleState) label() string { return "idle" }

func (s idleState) press(button string) (playerState, string) {
	if button == "play" {
		return playingState{}, "press play -> playing"
	}
	return s, fmt.Sprintf("press %s -> still idle", button)
}

type playingState struct{}

func (playingState) label() string { return "playing" }

func (s playingState) press(button string) (playerState, string) {
	switch button {
	case "pause":
		return pausedState{}, "press pause -> paused"
	case "stop":
		return idleState{}, "press stop -> idle"
	default:
		return s, fmt.Sprintf("press %s -> still playing", button)
	}
}

type pausedState struct{}

func (pausedState) label() string { return "paused" }

func (s pausedState) press(button string) (playerState, string) {
	switch button {
	case "play":
		return playingState{}, "press play -> playing"
	case "stop":
		return idleState{}, "press stop -> idle"
	default:
		return s, fmt.Sprintf("press %s -> still paused", button)
	}
}

type example struct{}

func (e *example) Setup(ctx context.Context) error { return nil }

func (e *example) Run(ctx context.Context) ([]string, error) {
	var current playerState = idleState{}
	lines := []string{fmt.Sprintf("player is %s", current.label())}

	for _, button := range []string{"play", "pause", "stop"} {
		var line string
		current, line = current.press(button)
		lines = append(lines, line)
	}
	return lines, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Behavioral, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the state demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Behavioral,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
