package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrServiceNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup failed: %w", ErrServiceNotFound)))
	assert.False(t, IsNotFoundError(ErrInvalidEntity))
	assert.False(t, IsNotFoundError(errors.New("something else")))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	wrapped := NewStoreError("service", "update", ErrServiceNotFound)

	assert.Contains(t, wrapped.Error(), "update operation on service failed")
	assert.True(t, errors.Is(wrapped, ErrServiceNotFound))
	assert.True(t, errors.Is(wrapped, ErrNotFound))

	var storeErr *StoreError
	assert.True(t, errors.As(wrapped, &storeErr))
	assert.Equal(t, "service", storeErr.Entity)
}
