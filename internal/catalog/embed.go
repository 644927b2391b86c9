package catalog

import (
	"embed"
	"io/fs"
)

//go:embed defs/*.hcl
var embedded embed.FS

// Default returns the catalog compiled into the binary. The CLI uses it
// whenever no on-disk catalog directory is supplied, so the harness is
// self-contained.
func Default() fs.FS {
	sub, err := fs.Sub(embedded, "defs")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}
