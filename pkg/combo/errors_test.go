package combo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpError(t *testing.T) {
	cause := errors.New("boom")
	err := &OpError{Op: "merge.write", Kind: KindWriteFailure, Path: "/tmp/out.txt", Err: cause}

	assert.Equal(t, "merge.write: write_failure (path=/tmp/out.txt): boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrWriteFailure)
	assert.NotErrorIs(t, err, ErrReadFailure)

	wrapped := fmt.Errorf("failed to write: %w", err)
	assert.ErrorIs(t, wrapped, ErrWriteFailure)
	assert.True(t, IsKind(wrapped, KindWriteFailure))
	assert.False(t, IsKind(wrapped, KindFileNotFound))
}

func TestOpError_WithoutPathOrCause(t *testing.T) {
	err := &OpError{Op: "split", Kind: KindInvalidArgument}
	assert.Equal(t, "split: invalid_argument", err.Error())
	assert.Nil(t, err.Unwrap())

	var nilErr *OpError
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestIsKind_PlainError(t *testing.T) {
	assert.False(t, IsKind(errors.New("plain"), KindReadFailure))
	assert.False(t, IsKind(nil, KindReadFailure))
}

func TestInvalidArgument(t *testing.T) {
	err := invalidArgument(OpSplit, "bad value %d", 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "bad value 0")
}
