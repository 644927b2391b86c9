package runner

import "fmt"

// phase is the lifecycle position of a single example run.
type phase int

const (
	phasePending phase = iota
	phaseSetup
	phaseRunning
	phaseSucceeded
	phaseFailed
	phaseErrored
)

// String returns a lower-case name for diagnostics.
func (p phase) String() string {
	switch p {
	case phasePending:
		return "pending"
	case phaseSetup:
		return "setup"
	case phaseRunning:
		return "running"
	case phaseSucceeded:
		return "succeeded"
	case phaseFailed:
		return "failed"
	case phaseErrored:
		return "errored"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// transitions is the closed set of legal phase moves. The three end phases
// are terminal; errored is reachable only from setup and running.
var transitions = map[phase][]phase{
	phasePending: {phaseSetup},
	phaseSetup:   {phaseRunning, phaseErrored},
	phaseRunning: {phaseSucceeded, phaseFailed, phaseErrored},
}

// runState tracks one run through its lifecycle. A transition outside the
// legal set is a programmer error in the runner itself, not an example
// failure, so it panics instead of producing a Result.
type runState struct {
	current phase
}

func newRunState() *runState {
	return &runState{current: phasePending}
}

// to advances the run to next, enforcing the legal transition set.
func (s *runState) to(next phase) {
	for _, allowed := range transitions[s.current] {
		if next == allowed {
			s.current = next
			return
		}
	}
	panic(fmt.Sprintf("illegal run state transition: %s -> %s", s.current, next))
}
