// Package contract defines the uniform capability interface every pattern
// demonstration must implement. The runner treats all examples identically
// through this contract regardless of how different their internals are.
package contract
