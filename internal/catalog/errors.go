// Package catalog supplies the built-in benefit catalog, loads external
// catalog files, and checks catalog integrity on behalf of producers.
package catalog

import "fmt"

// LoadError represents an error during catalog file I/O, parsing, or
// record validation
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
