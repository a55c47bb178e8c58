// Package apperr defines the error taxonomy shared by the store and the coach.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks errors the caller fixes by re-entering input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStorage marks failures of the persistence layer.
	ErrStorage = errors.New("storage failure")
)

// InputError is returned before any write when a required value is missing or malformed.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewInputError returns an InputError for field.
func NewInputError(field, reason string) *InputError {
	return &InputError{Field: field, Reason: reason}
}

// StorageError wraps a read or write that the store could not complete.
// Committed state is unaffected.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s > %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// Storage wraps err in a StorageError, or returns nil for a nil err.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// SequencingError reports that a quiz result was stored but the review
// schedule derived from it was not. The result stays durable and the next
// attempt recomputes the schedule from whatever state is stored.
type SequencingError struct {
	Topic     string
	AttemptID string
	Err       error
}

func (e *SequencingError) Error() string {
	return fmt.Sprintf("quiz result %s for %q saved but schedule not updated: %v", e.AttemptID, e.Topic, e.Err)
}

func (e *SequencingError) Unwrap() error { return e.Err }
