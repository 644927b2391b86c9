package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/MohamedBourass/patternbench/internal/ctxlog"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

// Apply performs a strict parity check between the catalog and the
// compiled-in registrations, then overlays each definition's expected
// transcript onto its registry entry. Every catalog definition must name a
// registered example of the same category, and every registered example
// must appear in the catalog.
func Apply(ctx context.Context, reg *registry.Registry, defs []Definition) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	declared := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		declared[def.Name] = struct{}{}

		entry, err := reg.Lookup(def.Name)
		if err != nil {
			errs = append(errs, fmt.Sprintf("catalog declares pattern %q but no Go module registers it", def.Name))
			continue
		}
		if entry.Category != def.Category {
			errs = append(errs, fmt.Sprintf("pattern %q: catalog says category '%s' but Go registration says '%s'",
				def.Name, def.Category, entry.Category))
			continue
		}
		if def.Expected != nil {
			if err := reg.SetExpected(def.Name, def.Expected); err != nil {
				errs = append(errs, err.Error())
			}
		}
	}

	for entry := range reg.All() {
		if _, ok := declared[entry.Name]; !ok {
			errs = append(errs, fmt.Sprintf("example %q is registered in Go but missing from the catalog", entry.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Catalog parity check passed.", "definitions", len(defs))
	return nil
}
