package runner

import (
	"fmt"
	"time"
)

// Status is the terminal outcome of one example run.
type Status int

const (
	// StatusSuccess means setup and run completed and the output matched
	// the expected transcript (or no transcript was declared).
	StatusSuccess Status = iota
	// StatusFailed means the run stage failed: it returned an error or its
	// output diverged from the expected transcript.
	StatusFailed
	// StatusErrored means the example never ran to completion: its setup
	// failed or it exceeded the per-example time budget.
	StatusErrored
)

// String returns the upper-case form used in report lines.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailed:
		return "FAILED"
	case StatusErrored:
		return "ERRORED"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the normalized outcome of executing one example. It is created
// by the runner, handed to the caller that requested the run, and never
// mutated afterwards.
type Result struct {
	// Name is the registry key of the example that ran.
	Name string
	// Intent is the example's one-line purpose, carried for reporting.
	Intent string
	// Status is the terminal outcome.
	Status Status
	// Output holds the ordered lines the example produced. It is populated
	// even on a transcript mismatch so the caller can inspect what the
	// example actually printed.
	Output []string
	// Detail is the failure reason. Empty iff Status is StatusSuccess.
	Detail string
	// Duration is the wall time spent in setup and run combined.
	Duration time.Duration
}

// MismatchError describes the first divergence between an example's output
// and its expected transcript. Line is 1-based.
type MismatchError struct {
	Line int
	Got  string
	Want string
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	switch {
	case e.Got == "" && e.Want != "":
		return fmt.Sprintf("output line %d: missing, want %q", e.Line, e.Want)
	case e.Want == "" && e.Got != "":
		return fmt.Sprintf("output line %d: unexpected %q", e.Line, e.Got)
	default:
		return fmt.Sprintf("output line %d: got %q, want %q", e.Line, e.Got, e.Want)
	}
}

// verify compares got against the expected transcript and returns a
// MismatchError naming the first diverging line. A nil transcript means the
// run is unverified and always passes.
func verify(got, want []string) error {
	if want == nil {
		return nil
	}
	for i := 0; i < len(got) || i < len(want); i++ {
		switch {
		case i >= len(got):
			return &MismatchError{Line: i + 1, Want: want[i]}
		case i >= len(want):
			return &MismatchError{Line: i + 1, Got: got[i]}
		case got[i] != want[i]:
			return &MismatchError{Line: i + 1, Got: got[i], Want: want[i]}
		}
	}
	return nil
}
