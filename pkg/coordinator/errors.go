package coordinator

import (
	"errors"
	"fmt"
)

// Sentinel errors for transition failures.
var (
	// ErrScreenNotFound indicates the factory has no producer for the requested screen id.
	// It points at a configuration problem and is never retried by the coordinator.
	ErrScreenNotFound = errors.New("screen not found")

	// ErrOwnershipMismatch indicates the coordinator is not answerable to the
	// coordinator that established the presentation it tries to close.
	ErrOwnershipMismatch = errors.New("coordinator ownership mismatch")

	// ErrNoPresentation indicates there is no active presentation edge to close.
	ErrNoPresentation = errors.New("no presentation to close")

	// ErrForeignScreen indicates a factory returned a screen bound to another coordinator.
	ErrForeignScreen = errors.New("screen bound to a different coordinator")
)

// TransitionError describes a failed coordinator operation.
//
// Screen creation failures are returned to the caller of the operation.
// Ownership failures are also reported through the OnComplete callback
// with ok set to false.
type TransitionError struct {
	Op     string // Operation that failed (e.g., "push", "dismiss")
	Group  string // Screen group of the coordinator performing the operation
	Screen string // Screen id involved, empty for dismiss
	Err    error  // Underlying error
}

func (e *TransitionError) Error() string {
	switch {
	case e.Screen != "":
		return fmt.Sprintf("coordinator: %s %s/%s: %v", e.Op, e.Group, e.Screen, e.Err)
	case e.Group != "":
		return fmt.Sprintf("coordinator: %s %s: %v", e.Op, e.Group, e.Err)
	default:
		return fmt.Sprintf("coordinator: %s: %v", e.Op, e.Err)
	}
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// NewTransitionError creates a new transition error.
func NewTransitionError(op, group, screen string, err error) *TransitionError {
	return &TransitionError{Op: op, Group: group, Screen: screen, Err: err}
}

// IsScreenNotFound checks if an error indicates an unresolvable screen id.
func IsScreenNotFound(err error) bool {
	return errors.Is(err, ErrScreenNotFound)
}

// IsOwnershipMismatch checks if an error indicates a rejected dismiss or a
// coordinator that is already attached elsewhere.
func IsOwnershipMismatch(err error) bool {
	return errors.Is(err, ErrOwnershipMismatch)
}

// IsNoPresentation checks if an error indicates there was nothing to close.
func IsNoPresentation(err error) bool {
	return errors.Is(err, ErrNoPresentation)
}
