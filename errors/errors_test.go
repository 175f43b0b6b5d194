package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := errors.New("error 1") //nolint:err113
		err2 := errors.New("error 2") //nolint:err113

		c.Add(err1)
		c.Add(err2)

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Empty(t, c.errors)
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(ErrKeyNotFound)
	c.Clear()

	assert.False(t, c.HasError())
	require.NoError(t, c.GetError())
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("empty collection", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		require.NoError(t, c.GetError())
	})

	t.Run("single error is returned unchanged", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrInvalidArgument)

		assert.Equal(t, ErrInvalidArgument, c.GetError())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrInvalidArgument)
		c.Add(ErrIndexOutOfRange)

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}
