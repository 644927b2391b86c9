package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

// fakeExample is a scriptable contract.Example for runner tests.
type fakeExample struct {
	info     contract.Info
	setupErr error
	runErr   error
	output   []string
	block    time.Duration // how long Run stalls before returning
}

func (f *fakeExample) Setup(ctx context.Context) error { return f.setupErr }

func (f *fakeExample) Run(ctx context.Context) ([]string, error) {
	if f.block > 0 {
		select {
		case <-time.After(f.block):
		case <-ctx.Done():
		}
	}
	return f.output, f.runErr
}

func (f *fakeExample) Describe() contract.Info { return f.info }

func register(t *testing.T, reg *registry.Registry, name string, fake *fakeExample, expected []string) {
	t.Helper()
	fake.info = contract.Info{Name: name, Category: contract.Behavioral, Intent: "fake"}
	require.NoError(t, reg.Register(registry.Entry{
		Name:     name,
		Category: contract.Behavioral,
		Intent:   "fake",
		New:      func() contract.Example { return fake },
		Expected: expected,
	}))
}

func TestRunOne_Success(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	register(t, reg, "Singleton", &fakeExample{
		output: []string{"instance-1==instance-2: true"},
	}, nil)

	result, err := New(reg, time.Second).RunOne(context.Background(), "Singleton")

	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Empty(t, result.Detail)
	assert.Empty(t, cmp.Diff([]string{"instance-1==instance-2: true"}, result.Output))
}

func TestRunOne_UnknownName(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	_, err := New(reg, time.Second).RunOne(context.Background(), "NoSuchPattern")

	var nf *registry.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "NoSuchPattern", nf.Name)
}

func TestRunOne_TranscriptMismatch(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	register(t, reg, "Strategy", &fakeExample{
		output: []string{"paid 10 with credit card", "paid 15 using PayPal"},
	}, []string{"paid 15 with credit card", "paid 15 using PayPal"})

	result, err := New(reg, time.Second).RunOne(context.Background(), "Strategy")

	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.Status)
	assert.Contains(t, result.Detail, "line 1")
	assert.Contains(t, result.Detail, `got "paid 10 with credit card"`)
	assert.Contains(t, result.Detail, `want "paid 15 with credit card"`)
	// The actual output survives in the result for inspection.
	assert.Equal(t, []string{"paid 10 with credit card", "paid 15 using PayPal"}, result.Output)
}

func TestRunOne_RunError(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	register(t, reg, "broken", &fakeExample{runErr: errors.New("boom")}, nil)

	result, err := New(reg, time.Second).RunOne(context.Background(), "broken")

	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.Status)
	assert.Contains(t, result.Detail, "run: boom")
}

func TestRunOne_SetupError(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	register(t, reg, "unavailable", &fakeExample{setupErr: errors.New("collaborator offline")}, nil)

	result, err := New(reg, time.Second).RunOne(context.Background(), "unavailable")

	require.NoError(t, err)
	assert.Equal(t, StatusErrored, result.Status)
	assert.Contains(t, result.Detail, "setup: collaborator offline")
}

func TestRunOne_TimeBudgetOverrun(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	register(t, reg, "slow", &fakeExample{block: 500 * time.Millisecond}, nil)

	result, err := New(reg, 20*time.Millisecond).RunOne(context.Background(), "slow")

	require.NoError(t, err)
	assert.Equal(t, StatusErrored, result.Status)
	assert.Contains(t, result.Detail, "time budget exceeded")
}

func TestRunOne_IsIdempotent(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	register(t, reg, "Strategy", &fakeExample{
		output: []string{"paid 15 with credit card", "paid 15 using PayPal"},
	}, nil)
	r := New(reg, time.Second)

	first, err := r.RunOne(context.Background(), "Strategy")
	require.NoError(t, err)
	second, err := r.RunOne(context.Background(), "Strategy")
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Output, second.Output)
	assert.Equal(t, first.Detail, second.Detail)
}

func TestRunAll_FailureIsolation(t *testing.T) {
	t.Parallel()

	// Three examples; the second one's setup fails deterministically. The
	// batch must still produce three results with the neighbours untouched.
	reg := registry.New()
	register(t, reg, "first", &fakeExample{output: []string{"ok"}}, nil)
	register(t, reg, "second", &fakeExample{setupErr: errors.New("simulated outage")}, nil)
	register(t, reg, "third", &fakeExample{output: []string{"ok"}}, nil)

	results := New(reg, time.Second).RunAll(context.Background())

	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].Name)
	assert.Equal(t, StatusSuccess, results[0].Status)
	assert.Equal(t, "second", results[1].Name)
	assert.Equal(t, StatusErrored, results[1].Status)
	assert.Equal(t, "third", results[2].Name)
	assert.Equal(t, StatusSuccess, results[2].Status)
}

func TestRunAll_ProducesExactlyOneResultPerEntry(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	register(t, reg, "a", &fakeExample{runErr: errors.New("bad")}, nil)
	register(t, reg, "b", &fakeExample{setupErr: errors.New("worse")}, nil)
	register(t, reg, "c", &fakeExample{output: []string{"x"}}, []string{"y"})
	register(t, reg, "d", &fakeExample{output: []string{"fine"}}, nil)

	results := New(reg, time.Second).RunAll(context.Background())

	require.Len(t, results, 4)
	statuses := make([]Status, len(results))
	for i, res := range results {
		statuses[i] = res.Status
	}
	assert.Equal(t, []Status{StatusFailed, StatusErrored, StatusFailed, StatusSuccess}, statuses)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("nil transcript always passes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, verify([]string{"anything"}, nil))
	})

	t.Run("missing trailing line", func(t *testing.T) {
		t.Parallel()
		err := verify([]string{"a"}, []string{"a", "b"})
		var mismatch *MismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 2, mismatch.Line)
		assert.Contains(t, mismatch.Error(), `missing, want "b"`)
	})

	t.Run("unexpected extra line", func(t *testing.T) {
		t.Parallel()
		err := verify([]string{"a", "b"}, []string{"a"})
		var mismatch *MismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 2, mismatch.Line)
		assert.Contains(t, mismatch.Error(), `unexpected "b"`)
	})
}

func TestRunStateTransitions(t *testing.T) {
	t.Parallel()

	t.Run("legal path to success", func(t *testing.T) {
		t.Parallel()
		s := newRunState()
		assert.NotPanics(t, func() {
			s.to(phaseSetup)
			s.to(phaseRunning)
			s.to(phaseSucceeded)
		})
	})

	t.Run("errored is unreachable from pending", func(t *testing.T) {
		t.Parallel()
		s := newRunState()
		assert.Panics(t, func() { s.to(phaseErrored) })
	})

	t.Run("end states are terminal", func(t *testing.T) {
		t.Parallel()
		s := newRunState()
		s.to(phaseSetup)
		s.to(phaseErrored)
		assert.Panics(t, func() { s.to(phaseRunning) })
	})

	t.Run("running cannot be skipped", func(t *testing.T) {
		t.Parallel()
		s := newRunState()
		s.to(phaseSetup)
		assert.Panics(t, func() { s.to(phaseSucceeded) })
	})
}
