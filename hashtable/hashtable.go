// Package hashtable provides an unordered key/value map that resolves hash
// collisions by separate chaining and doubles its bucket array whenever the
// number of entries reaches ⌊Capacity × MaxLoadFactor⌋.
//
// Keys implement collectable.Collectable: UpdateHash chooses the bucket and
// Equals resolves collisions within it. Equal keys must write identical bytes
// to the hash.
package hashtable

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"facette.io/natsort"
	"github.com/amp-labs/amp-collections/assert"
	"github.com/amp-labs/amp-collections/collectable"
	"github.com/amp-labs/amp-collections/dynarray"
	errors2 "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/hashing"
	"github.com/amp-labs/amp-collections/optional"
	"github.com/amp-labs/amp-collections/zero"
)

// Table is a hash map from K to V using separate chaining.
//
// After every Put the table satisfies Size() <= Capacity() × MaxLoadFactor().
// Each key appears in at most one entry.
//
// Thread-safety: Table is not thread-safe. Concurrent access must be synchronized by the caller.
type Table[K collectable.Collectable[K], V any] struct {
	buckets       []bucket[K, V]
	size          int
	maxLoadFactor float64
	newHash       hashing.Hash64Func
	logger        *slog.Logger
}

// New creates an empty table. Without options it has DefaultCapacity buckets,
// DefaultMaxLoadFactor and hashes keys with XXH3.
// Returns ErrInvalidArgument for a non-positive capacity, a load factor outside
// (0, 1], or a nil hasher.
//
// Example:
//
//	table, err := hashtable.New[hashing.HashableString, int](
//	    hashtable.WithCapacity(64),
//	    hashtable.WithMaxLoadFactor(0.5),
//	)
func New[K collectable.Collectable[K], V any](opts ...Option) (*Table[K, V], error) {
	settings := defaultOptions()

	for _, opt := range opts {
		opt(&settings)
	}

	if err := settings.normalize(); err != nil {
		return nil, err
	}

	return &Table[K, V]{
		buckets:       make([]bucket[K, V], settings.capacity),
		maxLoadFactor: settings.maxLoadFactor,
		newHash:       settings.newHash,
		logger:        settings.logger,
	}, nil
}

// NewFromConfig creates an empty table sized by cfg. Additional options are
// applied after the config and take precedence.
func NewFromConfig[K collectable.Collectable[K], V any](cfg Config, opts ...Option) (*Table[K, V], error) {
	return New[K, V](append(cfg.Options(), opts...)...)
}

// Size returns the number of entries.
func (t *Table[K, V]) Size() int {
	return t.size
}

// Capacity returns the current number of buckets.
func (t *Table[K, V]) Capacity() int {
	return len(t.buckets)
}

// MaxLoadFactor returns the configured upper bound on Size ÷ Capacity.
func (t *Table[K, V]) MaxLoadFactor() float64 {
	return t.maxLoadFactor
}

// Load returns the current Size ÷ Capacity.
func (t *Table[K, V]) Load() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// Put stores value under key. If the key is already present its value is
// replaced and Size is unchanged; otherwise the entry is appended to the tail
// of its bucket and the table grows if it has reached its load threshold.
// Returns ErrInvalidArgument if key is nil, or the key's hashing error.
func (t *Table[K, V]) Put(key K, value V) error {
	sum, err := t.hashKey(key)
	if err != nil {
		return err
	}

	b := t.bucketFor(sum)

	if e := b.find(key); e != nil {
		e.value = value

		return nil
	}

	b.push(&entry[K, V]{key: key, value: value, hash: sum})
	t.size++

	for t.size >= t.threshold() {
		t.resize(len(t.buckets) * 2)
	}

	return nil
}

// Get returns the value stored under key.
// Returns ErrKeyNotFound if the key is absent, ErrInvalidArgument if key is nil,
// or the key's hashing error.
func (t *Table[K, V]) Get(key K) (V, error) {
	e, err := t.lookup(key)
	if err != nil {
		return zero.Value[V](), err
	}

	if e == nil {
		return zero.Value[V](), fmt.Errorf("%w: %v", errors2.ErrKeyNotFound, key)
	}

	return e.value, nil
}

// TryGetValue returns the value stored under key and whether it was found.
// It never fails: a nil key, or a key whose hashing fails, cannot have been
// stored and is reported as not found.
func (t *Table[K, V]) TryGetValue(key K) (V, bool) {
	e, err := t.lookup(key)
	if err != nil || e == nil {
		return zero.Value[V](), false
	}

	return e.value, true
}

// ContainsKey reports whether key is present, with the same failure
// handling as TryGetValue.
func (t *Table[K, V]) ContainsKey(key K) bool {
	_, found := t.TryGetValue(key)

	return found
}

// Remove deletes key and returns the value it held, or None if the key was
// absent. Returns ErrInvalidArgument if key is nil, or the key's hashing error.
func (t *Table[K, V]) Remove(key K) (optional.Value[V], error) {
	sum, err := t.hashKey(key)
	if err != nil {
		return optional.None[V](), err
	}

	b := t.bucketFor(sum)

	e := b.find(key)
	if e == nil {
		return optional.None[V](), nil
	}

	b.unlink(e)
	t.size--

	return optional.Some(e.value), nil
}

// Clear removes every entry. Capacity is unchanged.
func (t *Table[K, V]) Clear() {
	clear(t.buckets)

	t.size = 0
}

// All returns an iterator over the entries: buckets in index order and, within
// a bucket, chain order. The table must not be modified while iterating.
//
// This enables Go 1.23+ range-over-func syntax: for k, v := range table.All() { ... }
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range t.buckets {
			for e := t.buckets[i].head; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Keys returns a snapshot of the keys in iteration order.
func (t *Table[K, V]) Keys() *dynarray.Array[K] {
	out := dynarray.New[K](t.size)

	for k := range t.All() {
		out.Append(k)
	}

	return out
}

// Values returns a snapshot of the values in iteration order.
func (t *Table[K, V]) Values() *dynarray.Array[V] {
	out := dynarray.New[V](t.size)

	for _, v := range t.All() {
		out.Append(v)
	}

	return out
}

// String renders the table for debugging, with entries in natural sort order
// of their formatted keys (so "k2" comes before "k10").
func (t *Table[K, V]) String() string {
	items := make([]string, 0, t.size)

	for k, v := range t.All() {
		items = append(items, fmt.Sprintf("%v: %v", k, v))
	}

	natsort.Sort(items)

	return fmt.Sprintf("Table{size: %d, capacity: %d, entries: [%s]}",
		t.size, len(t.buckets), strings.Join(items, ", "))
}

func (t *Table[K, V]) hashKey(key K) (uint64, error) {
	if zero.IsNil(key) {
		return 0, fmt.Errorf("%w: key must not be nil", errors2.ErrInvalidArgument)
	}

	sum, err := hashing.Sum64(key, t.newHash)
	if err != nil {
		return 0, fmt.Errorf("hashing key %v: %w", key, err)
	}

	return sum, nil
}

func (t *Table[K, V]) lookup(key K) (*entry[K, V], error) {
	sum, err := t.hashKey(key)
	if err != nil {
		return nil, err
	}

	return t.bucketFor(sum).find(key), nil
}

func (t *Table[K, V]) bucketFor(sum uint64) *bucket[K, V] {
	return &t.buckets[sum%uint64(len(t.buckets))]
}

// threshold is the entry count at which the table grows.
func (t *Table[K, V]) threshold() int {
	return int(float64(len(t.buckets)) * t.maxLoadFactor)
}

// resize moves every entry into a fresh bucket array of the given capacity.
// Entries are visited in iteration order and appended to their new chains,
// so each new chain is ordered by that pass rather than by old bucket.
func (t *Table[K, V]) resize(capacity int) {
	old := t.buckets
	t.buckets = make([]bucket[K, V], capacity)
	moved := 0

	for i := range old {
		e := old[i].head

		for e != nil {
			next := e.next
			t.bucketFor(e.hash).push(e)
			e = next
			moved++
		}
	}

	assert.True(moved == t.size, "hashtable: rehash moved %d entries, size is %d", moved, t.size)

	t.logger.Debug("hash table resized",
		"from", len(old),
		"to", capacity,
		"size", t.size)
}
