// Package rendering draws laid-out documents into PDF bytes. It is the only
// package that depends on the drawing backend's internals.
package rendering

import "fmt"

// BackendError represents a failure in the underlying drawing/output stage.
// It is fatal and never retried internally; callers may retry the whole
// compile.
type BackendError struct {
	Message string
	Cause   error
}

func (e *BackendError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render backend error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render backend error: %s", e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}
