package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError(OpList, "query failed", cause)

	assert.Equal(t, "task store list: query failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsNotFoundError(err))

	bare := NewStoreError(OpCreate, "no id returned", nil)
	assert.Equal(t, "task store create: no id returned", bare.Error())
	assert.NoError(t, bare.Unwrap())
}

func TestStoreError_WrapsSentinels(t *testing.T) {
	t.Parallel()

	err := NewStoreError(OpUpdate, "exec failed", ErrTaskNotFound)

	assert.True(t, IsNotFoundError(err))

	var storeErr *StoreError
	assert.True(t, errors.As(err, &storeErr))
	assert.Equal(t, OpUpdate, storeErr.Operation)
}

func TestErrTaskNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.Is(ErrTaskNotFound, ErrNotFound))
	assert.Equal(t, "entity not found: task", ErrTaskNotFound.Error())
	assert.False(t, errors.Is(ErrInvalidEntity, ErrNotFound))
}
