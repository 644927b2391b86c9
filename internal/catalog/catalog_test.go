package catalog

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

// stubExample satisfies contract.Example for catalog tests.
type stubExample struct{}

func (stubExample) Setup(ctx context.Context) error { return nil }

func (stubExample) Run(ctx context.Context) ([]string, error) { return nil, nil }

func (stubExample) Describe() contract.Info { return contract.Info{} }

func registered(t *testing.T, entries ...registry.Entry) *registry.Registry {
	t.Helper()
	reg := registry.New()
	for _, e := range entries {
		if e.New == nil {
			e.New = func() contract.Example { return stubExample{} }
		}
		require.NoError(t, reg.Register(e))
	}
	return reg
}

func fsWith(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("parses patterns with expected output in order", func(t *testing.T) {
		t.Parallel()
		fsys := fsWith(map[string]string{"main.hcl": `
pattern "strategy" {
  category = "behavioral"
  intent   = "Swap the algorithm."

  expected_output = [
    "paid 15 with credit card",
    "paid 15 using PayPal",
  ]
}

pattern "facade" {
  category = "structural"
  intent   = "Hide the subsystem."
}
`})

		defs, err := Load(context.Background(), fsys)

		require.NoError(t, err)
		require.Len(t, defs, 2)
		assert.Equal(t, "strategy", defs[0].Name)
		assert.Equal(t, contract.Behavioral, defs[0].Category)
		assert.Equal(t, []string{"paid 15 with credit card", "paid 15 using PayPal"}, defs[0].Expected)
		assert.Equal(t, "facade", defs[1].Name)
		assert.Nil(t, defs[1].Expected)
	})

	t.Run("rejects unknown categories", func(t *testing.T) {
		t.Parallel()
		fsys := fsWith(map[string]string{"main.hcl": `
pattern "mystery" {
  category = "magical"
  intent   = "???"
}
`})

		_, err := Load(context.Background(), fsys)
		assert.ErrorContains(t, err, `unknown category "magical"`)
	})

	t.Run("rejects malformed HCL", func(t *testing.T) {
		t.Parallel()
		fsys := fsWith(map[string]string{"broken.hcl": `pattern "x" {`})

		_, err := Load(context.Background(), fsys)
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("rejects duplicate declarations across files", func(t *testing.T) {
		t.Parallel()
		block := `
pattern "strategy" {
  category = "behavioral"
  intent   = "Swap the algorithm."
}
`
		fsys := fsWith(map[string]string{"a.hcl": block, "b.hcl": block})

		_, err := Load(context.Background(), fsys)
		assert.ErrorContains(t, err, `pattern "strategy" declared in both`)
	})

	t.Run("rejects an empty catalog", func(t *testing.T) {
		t.Parallel()
		_, err := Load(context.Background(), fsWith(nil))
		assert.ErrorContains(t, err, "no .hcl catalog files")
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("overlays expected transcripts onto registrations", func(t *testing.T) {
		t.Parallel()
		reg := registered(t, registry.Entry{Name: "strategy", Category: contract.Behavioral, Intent: "swap"})
		defs := []Definition{{
			Name:     "strategy",
			Category: contract.Behavioral,
			Intent:   "swap",
			Expected: []string{"paid 15 with credit card"},
		}}

		require.NoError(t, Apply(context.Background(), reg, defs))

		entry, err := reg.Lookup("strategy")
		require.NoError(t, err)
		assert.Equal(t, []string{"paid 15 with credit card"}, entry.Expected)
	})

	t.Run("fails when the catalog declares an unregistered pattern", func(t *testing.T) {
		t.Parallel()
		reg := registered(t)
		defs := []Definition{{Name: "ghost", Category: contract.Behavioral, Intent: "boo"}}

		err := Apply(context.Background(), reg, defs)
		assert.ErrorContains(t, err, `catalog declares pattern "ghost"`)
	})

	t.Run("fails when a registration is missing from the catalog", func(t *testing.T) {
		t.Parallel()
		reg := registered(t, registry.Entry{Name: "strategy", Category: contract.Behavioral, Intent: "swap"})

		err := Apply(context.Background(), reg, nil)
		assert.ErrorContains(t, err, `example "strategy" is registered in Go but missing from the catalog`)
	})

	t.Run("fails on category disagreement", func(t *testing.T) {
		t.Parallel()
		reg := registered(t, registry.Entry{Name: "strategy", Category: contract.Behavioral, Intent: "swap"})
		defs := []Definition{{Name: "strategy", Category: contract.Creational, Intent: "swap"}}

		err := Apply(context.Background(), reg, defs)
		assert.ErrorContains(t, err, "catalog says category 'creational' but Go registration says 'behavioral'")
	})
}

func TestDefaultCatalogParses(t *testing.T) {
	t.Parallel()

	defs, err := Load(context.Background(), Default())

	require.NoError(t, err)
	assert.Len(t, defs, 16)
}
