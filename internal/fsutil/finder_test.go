package fsutil

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"behavioral.hcl":        {Data: []byte("")},
		"creational.hcl":        {Data: []byte("")},
		"nested/structural.hcl": {Data: []byte("")},
		"README.md":             {Data: []byte("")},
	}

	t.Run("finds matching files in lexical order", func(t *testing.T) {
		t.Parallel()
		files, err := FindFilesByExtension(fsys, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{"behavioral.hcl", "creational.hcl", "nested/structural.hcl"}, files)
	})

	t.Run("returns nothing when no file matches", func(t *testing.T) {
		t.Parallel()
		files, err := FindFilesByExtension(fsys, ".json")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("panics on empty extension", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			_, _ = FindFilesByExtension(fsys, "")
		})
	})
}
