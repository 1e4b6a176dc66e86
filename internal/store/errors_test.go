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
	assert.True(t, IsNotFoundError(ErrTaskNotFound))
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrSubscriptionNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup failed: %w", ErrTaskNotFound)))

	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(errors.New("some other error")))
	assert.False(t, IsNotFoundError(ErrEmailExists))
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrEmailExists))

	assert.False(t, IsDuplicateError(ErrTaskNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	inner := errors.New("connection refused")
	err := NewStoreError("task", "create", "insert failed", inner)

	assert.Contains(t, err.Error(), "create operation on task failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, inner)

	// Without a wrapped error the message still reads cleanly.
	bare := NewStoreError("user", "delete", "no rows", nil)
	assert.Equal(t, "delete operation on user failed: no rows", bare.Error())
	assert.Nil(t, errors.Unwrap(bare))
}

func TestStoreErrorWrapsSentinels(t *testing.T) {
	t.Parallel()

	err := NewStoreError("task", "get", "missing row", ErrTaskNotFound)
	assert.True(t, IsNotFoundError(err))
}
