package registry

import "fmt"

// DuplicateNameError reports an attempt to register a name that is already
// taken. The registration that triggered it is rejected; the existing entry
// is untouched.
type DuplicateNameError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("example %q is already registered", e.Name)
}

// NotFoundError reports a lookup of a name no example was registered under.
type NotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no example registered under %q", e.Name)
}
