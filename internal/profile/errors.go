// Package profile loads veteran profile files for the matching pipeline.
package profile

import "fmt"

// LoadError represents an error during profile file I/O, parsing, or
// record validation
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("profile load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
