package hashtable_test

import (
	"testing"

	errors2 "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/hashing"
	"github.com/amp-labs/amp-collections/hashtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("full document", func(t *testing.T) {
		t.Parallel()

		cfg, err := hashtable.ParseConfig([]byte("capacity: 64\nmaxLoadFactor: 0.5\n"))
		require.NoError(t, err)
		assert.Equal(t, hashtable.Config{Capacity: 64, MaxLoadFactor: 0.5}, cfg)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := hashtable.ParseConfig([]byte("capacity: 8\n"))
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Capacity)
		assert.InDelta(t, hashtable.DefaultMaxLoadFactor, cfg.MaxLoadFactor, 1e-9)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		cfg, err := hashtable.ParseConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, hashtable.DefaultConfig(), cfg)
	})

	t.Run("out of range values", func(t *testing.T) {
		t.Parallel()

		_, err := hashtable.ParseConfig([]byte("maxLoadFactor: 1.5\n"))
		require.ErrorIs(t, err, errors2.ErrInvalidArgument)

		_, err = hashtable.ParseConfig([]byte("capacity: -1\n"))
		require.ErrorIs(t, err, errors2.ErrInvalidArgument)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := hashtable.ParseConfig([]byte("capacity: [1, 2"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing hash table config")
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("applies sizing", func(t *testing.T) {
		t.Parallel()

		table, err := hashtable.NewFromConfig[hashing.HashableString, int](
			hashtable.Config{Capacity: 3, MaxLoadFactor: 0.75})
		require.NoError(t, err)
		assert.Equal(t, 3, table.Capacity())
		assert.InDelta(t, 0.75, table.MaxLoadFactor(), 1e-9)
	})

	t.Run("later options win", func(t *testing.T) {
		t.Parallel()

		table, err := hashtable.NewFromConfig[hashing.HashableString, int](
			hashtable.DefaultConfig(), hashtable.WithCapacity(32))
		require.NoError(t, err)
		assert.Equal(t, 32, table.Capacity())
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		t.Parallel()

		table, err := hashtable.NewFromConfig[hashing.HashableString, int](hashtable.Config{})
		require.ErrorIs(t, err, errors2.ErrInvalidArgument)
		assert.Nil(t, table)
	})
}
