// Package validation provides structural shape checks for résumé records
// before compilation.
package validation

import "fmt"

// ShapeError represents an invalid record shape: a required field is absent
// or has the wrong form. The offending section is identified for the caller;
// the compiler never auto-repairs shape violations.
type ShapeError struct {
	Section string
	Message string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid record shape: %s: %s", e.Section, e.Message)
}
