// Package catalog loads the HCL catalog that declares the public surface of
// the harness: one `pattern` block per example, carrying its category, its
// one-line intent, and optionally the exact transcript the example must
// produce. The catalog is reconciled against the compiled-in registrations
// at startup so the Go code and the catalog cannot drift apart.
package catalog
