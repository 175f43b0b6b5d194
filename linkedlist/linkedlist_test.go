package linkedlist_test

import (
	"slices"
	"testing"

	errors2 "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/linkedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Push(t *testing.T) {
	t.Parallel()

	l := linkedlist.New[int]()
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.All()))
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(l.Backward()))
	assert.Equal(t, 1, l.Front().GetOrPanic())
	assert.Equal(t, 3, l.Back().GetOrPanic())
}

func TestList_Pop(t *testing.T) {
	t.Parallel()

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		l := linkedlist.New[string]()
		assert.True(t, l.PopFront().Empty())
		assert.True(t, l.PopBack().Empty())
		assert.True(t, l.Front().Empty())
		assert.True(t, l.Back().Empty())
	})

	t.Run("drains from both ends", func(t *testing.T) {
		t.Parallel()

		l := linkedlist.From(1, 2, 3)

		assert.Equal(t, 1, l.PopFront().GetOrPanic())
		assert.Equal(t, 3, l.PopBack().GetOrPanic())
		assert.Equal(t, 2, l.PopBack().GetOrPanic())
		assert.True(t, l.IsEmpty())
		assert.Empty(t, slices.Collect(l.All()))
		assert.Empty(t, slices.Collect(l.Backward()))
	})
}

func TestList_At(t *testing.T) {
	t.Parallel()

	l := linkedlist.From("a", "b", "c", "d", "e")

	for i, expected := range []string{"a", "b", "c", "d", "e"} {
		v, err := l.At(i)
		require.NoError(t, err)
		assert.Equal(t, expected, v)
	}

	_, err := l.At(5)
	require.ErrorIs(t, err, errors2.ErrIndexOutOfRange)
}

func TestList_InsertAt(t *testing.T) {
	t.Parallel()

	l := linkedlist.From(1, 3)

	require.NoError(t, l.InsertAt(1, 2))
	require.NoError(t, l.InsertAt(0, 0))
	require.NoError(t, l.InsertAt(4, 4))
	require.ErrorIs(t, l.InsertAt(9, 9), errors2.ErrIndexOutOfRange)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, slices.Collect(l.All()))
	assert.Equal(t, []int{4, 3, 2, 1, 0}, slices.Collect(l.Backward()))
}

func TestList_RemoveAt(t *testing.T) {
	t.Parallel()

	l := linkedlist.From(1, 2, 3, 4)

	v, err := l.RemoveAt(3)
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	v, err = l.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	assert.Equal(t, []int{2, 3}, slices.Collect(l.All()))
	assert.Equal(t, []int{3, 2}, slices.Collect(l.Backward()))

	_, err = l.RemoveAt(-1)
	require.ErrorIs(t, err, errors2.ErrIndexOutOfRange)
}

func TestList_Clear(t *testing.T) {
	t.Parallel()

	l := linkedlist.From(1, 2)
	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Front().Empty())
}
