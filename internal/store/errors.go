package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrServiceNotFound indicates that the requested service does not exist
	// in the store.
	ErrServiceNotFound = fmt.Errorf("%w: service", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for store-specific errors with
// additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "service")
	Operation string // The operation that failed (e.g., "create", "update")
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s operation on %s failed: %v", e.Operation, e.Entity, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation,
// and wrapped error.
func NewStoreError(entity, operation string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Err:       err,
	}
}
