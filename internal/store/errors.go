package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrTaskNotFound is the ErrNotFound returned for an unknown task id.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrInvalidEntity is returned when the database rejects a record, e.g.
	// through a CHECK or NOT NULL constraint on the tasks table.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a transaction cannot be started
	// or committed.
	ErrTransactionFailed = errors.New("transaction failed")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Operation names a TaskStore method in errors and logs.
type Operation string

const (
	OpCreate Operation = "create"
	OpGet    Operation = "get"
	OpList   Operation = "list"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// StoreError reports a failed TaskStore call. Err holds the driver error,
// already mapped to a store sentinel where one applies.
type StoreError struct {
	Operation Operation
	Message   string
	Err       error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("task store %s: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("task store %s: %s: %v", e.Operation, e.Message, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err with the failed operation.
func NewStoreError(op Operation, message string, err error) *StoreError {
	return &StoreError{Operation: op, Message: message, Err: err}
}
