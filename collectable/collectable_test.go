package collectable_test

import (
	"testing"

	"github.com/amp-labs/amp-collections/collectable"
	"github.com/amp-labs/amp-collections/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	x, y int
}

func TestOf_UpdateHash(t *testing.T) {
	t.Parallel()

	t.Run("matches the hashing wrapper", func(t *testing.T) {
		t.Parallel()

		wrapped, err := hashing.Sum64(collectable.Key("hello"), hashing.NewXXH3)
		require.NoError(t, err)

		direct, err := hashing.Sum64(hashing.HashableString("hello"), hashing.NewXXH3)
		require.NoError(t, err)

		assert.Equal(t, direct, wrapped)
	})

	t.Run("narrow integers widen", func(t *testing.T) {
		t.Parallel()

		narrow, err := hashing.Sum64(collectable.Key(int8(-5)), hashing.NewFNV64a)
		require.NoError(t, err)

		wide, err := hashing.Sum64(collectable.Key(int64(-5)), hashing.NewFNV64a)
		require.NoError(t, err)

		assert.Equal(t, wide, narrow)
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()

		_, err := hashing.Sum64(collectable.Key(point{1, 2}), hashing.NewXXH3)
		require.ErrorIs(t, err, collectable.ErrUnsupportedType)
	})
}

func TestOf_Equals(t *testing.T) {
	t.Parallel()

	assert.True(t, collectable.Key(7).Equals(collectable.Key(7)))
	assert.False(t, collectable.Key(7).Equals(collectable.Key(8)))
	assert.Equal(t, "true", collectable.Key(true).String())
}
