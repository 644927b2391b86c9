package catalog

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/ctxlog"
	"github.com/MohamedBourass/patternbench/internal/fsutil"
)

// Definition is the format-agnostic form of one catalog entry, translated
// out of the HCL-specific schema.
type Definition struct {
	Name     string
	Category contract.Category
	Intent   string
	Expected []string
}

// Load parses every .hcl file in fsys and returns the declared definitions
// in file order. Definitions must be unique by name across all files.
func Load(ctx context.Context, fsys fs.FS) ([]Definition, error) {
	logger := ctxlog.FromContext(ctx)

	filePaths, err := fsutil.FindFilesByExtension(fsys, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to walk catalog: %w", err)
	}
	if len(filePaths) == 0 {
		return nil, fmt.Errorf("no .hcl catalog files found")
	}
	logger.Debug("Found catalog files to load.", "files", filePaths)

	parser := hclparse.NewParser()
	seen := make(map[string]string)
	var defs []Definition

	for _, filePath := range filePaths {
		src, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file %s: %w", filePath, err)
		}

		hclFile, diags := parser.ParseHCL(src, filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse catalog file %s: %w", filePath, diags)
		}

		var schema fileSchema
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &schema); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode catalog file %s: %w", filePath, diags)
		}

		for _, block := range schema.Patterns {
			if prev, dup := seen[block.Name]; dup {
				return nil, fmt.Errorf("pattern %q declared in both %s and %s", block.Name, prev, filePath)
			}
			seen[block.Name] = filePath

			def, err := translatePattern(block)
			if err != nil {
				return nil, fmt.Errorf("in catalog file %s: %w", filePath, err)
			}
			defs = append(defs, def)
		}
		logger.Debug("Loaded definitions from catalog file.", "file", filePath, "patterns", len(schema.Patterns))
	}

	logger.Info("Catalog loaded successfully.", "definitions", len(defs))
	return defs, nil
}

// translatePattern converts one HCL pattern block into the agnostic model.
func translatePattern(block *patternBlock) (Definition, error) {
	category, err := contract.ParseCategory(block.Category)
	if err != nil {
		return Definition{}, fmt.Errorf("pattern %q: %w", block.Name, err)
	}
	if block.Intent == "" {
		return Definition{}, fmt.Errorf("pattern %q: intent must not be empty", block.Name)
	}
	return Definition{
		Name:     block.Name,
		Category: category,
		Intent:   block.Intent,
		Expected: block.Expected,
	}, nil
}
