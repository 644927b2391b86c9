// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"sort"
	"strings"
)

// FindFilesByExtension recursively searches fsys for all files ending with
// the specified extension and returns their paths in lexical order, so the
// catalog loads deterministically no matter which fs.FS backs it (the
// embedded default or an on-disk override).
func FindFilesByExtension(fsys fs.FS, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
