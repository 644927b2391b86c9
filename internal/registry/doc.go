// Package registry provides the central catalogue for the harness.
//
// The Registry maps a pattern example's unique name to the factory capable
// of producing a runnable instance of it, together with the metadata the
// reporter and catalog need (category, intent, expected output).
//
// During application startup the registry is populated from the compiled-in
// pattern modules and then reconciled against the HCL catalog to ensure the
// Go code and the public-facing catalog are in sync. Once execution begins
// the registry is read-only.
package registry
