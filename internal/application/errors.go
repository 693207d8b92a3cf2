package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNoDeck        = errors.New("no active review deck")
	ErrRootDirectory = errors.New("the root directory cannot be deleted")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PersistError wraps a failed snapshot write. The in-memory mutation has
// already been applied when this surfaces; the caller decides whether to
// retry the persist or accept the divergence.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: persisting state: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
