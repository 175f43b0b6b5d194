package dynarray_test

import (
	"testing"

	"github.com/amp-labs/amp-collections/dynarray"
	errors2 "github.com/amp-labs/amp-collections/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("uses the capacity hint", func(t *testing.T) {
		t.Parallel()

		arr := dynarray.New[int](10)
		assert.Equal(t, 0, arr.Len())
		assert.Equal(t, 10, arr.Cap())
		assert.True(t, arr.IsEmpty())
	})

	t.Run("falls back to the default capacity", func(t *testing.T) {
		t.Parallel()

		arr := dynarray.New[int](0)
		assert.Equal(t, dynarray.DefaultCapacity, arr.Cap())
	})

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()

		var arr dynarray.Array[string]

		arr.Append("a")
		assert.Equal(t, 1, arr.Len())
		assert.Equal(t, dynarray.DefaultCapacity, arr.Cap())
	})
}

func TestArray_Append(t *testing.T) {
	t.Parallel()

	t.Run("doubles when full", func(t *testing.T) {
		t.Parallel()

		arr := dynarray.New[int](2)
		arr.Append(1)
		arr.Append(2)
		assert.Equal(t, 2, arr.Cap())

		arr.Append(3)
		assert.Equal(t, 4, arr.Cap())
		assert.Equal(t, []int{1, 2, 3}, arr.Slice())
	})

	t.Run("keeps order across many growths", func(t *testing.T) {
		t.Parallel()

		arr := dynarray.New[int](1)

		for i := range 1000 {
			arr.Append(i)
		}

		require.Equal(t, 1000, arr.Len())

		for i, v := range arr.All() {
			assert.Equal(t, i, v)
		}
	})
}

func TestArray_At(t *testing.T) {
	t.Parallel()

	arr := dynarray.From("a", "b", "c")

	v, err := arr.At(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	_, err = arr.At(3)
	require.ErrorIs(t, err, errors2.ErrIndexOutOfRange)

	_, err = arr.At(-1)
	require.ErrorIs(t, err, errors2.ErrIndexOutOfRange)
}

func TestArray_Set(t *testing.T) {
	t.Parallel()

	arr := dynarray.From(1, 2, 3)

	require.NoError(t, arr.Set(0, 10))
	assert.Equal(t, []int{10, 2, 3}, arr.Slice())
	require.ErrorIs(t, arr.Set(3, 0), errors2.ErrIndexOutOfRange)
}

func TestArray_RemoveAt(t *testing.T) {
	t.Parallel()

	arr := dynarray.From(1, 2, 3, 4)

	removed, err := arr.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []int{1, 3, 4}, arr.Slice())

	removed, err = arr.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, 4, removed)
	assert.Equal(t, []int{1, 3}, arr.Slice())

	_, err = arr.RemoveAt(2)
	require.ErrorIs(t, err, errors2.ErrIndexOutOfRange)
}

func TestArray_Clear(t *testing.T) {
	t.Parallel()

	arr := dynarray.From(1, 2, 3)
	capacity := arr.Cap()

	arr.Clear()

	assert.True(t, arr.IsEmpty())
	assert.Equal(t, capacity, arr.Cap())
	assert.Empty(t, arr.Slice())
}

func TestArray_Values(t *testing.T) {
	t.Parallel()

	arr := dynarray.From(5, 6, 7)

	var seen []int

	for v := range arr.Values() {
		if v == 7 {
			break
		}

		seen = append(seen, v)
	}

	assert.Equal(t, []int{5, 6}, seen)
}
