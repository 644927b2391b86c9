// Package report renders runner results into a stable, diffable textual
// summary. Rendering is a pure function of its input: one tab-separated
// line per attempted example, in input order, followed by a totals line, so
// a single broken example never hides the results of the others.
package report

import (
	"fmt"
	"io"

	"github.com/MohamedBourass/patternbench/internal/runner"
)

// Summary holds per-status counts for one batch of results.
type Summary struct {
	Total   int
	Success int
	Failed  int
	Errored int
}

// AllSucceeded reports whether every result in the batch succeeded.
func (s Summary) AllSucceeded() bool {
	return s.Failed == 0 && s.Errored == 0
}

// Summarize tallies results by status.
func Summarize(results []runner.Result) Summary {
	s := Summary{Total: len(results)}
	for _, res := range results {
		switch res.Status {
		case runner.StatusSuccess:
			s.Success++
		case runner.StatusFailed:
			s.Failed++
		case runner.StatusErrored:
			s.Errored++
		}
	}
	return s
}

// Render writes one `<status>\t<name>\t<detail>` line per result followed
// by the summary line. The detail column carries the failure reason for
// failed and errored results and the example's intent for successful ones.
func Render(w io.Writer, results []runner.Result) error {
	for _, res := range results {
		detail := res.Detail
		if detail == "" {
			detail = res.Intent
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", res.Status, res.Name, detail); err != nil {
			return err
		}
	}
	s := Summarize(results)
	_, err := fmt.Fprintf(w, "TOTAL=%d SUCCESS=%d FAILED=%d ERRORED=%d\n", s.Total, s.Success, s.Failed, s.Errored)
	return err
}
