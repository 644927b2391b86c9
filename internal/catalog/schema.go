package catalog

import "github.com/hashicorp/hcl/v2"

// patternBlock represents a `pattern` block from a catalog file.
type patternBlock struct {
	Name     string   `hcl:"name,label"`
	Category string   `hcl:"category"`
	Intent   string   `hcl:"intent"`
	Expected []string `hcl:"expected_output,optional"`
}

// fileSchema represents the top-level structure of one catalog file.
type fileSchema struct {
	Patterns []*patternBlock `hcl:"pattern,block"`
	Body     hcl.Body        `hcl:",remain"`
}
