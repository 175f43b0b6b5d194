// Package collectable defines the key capability required by the hash table:
// a type that can feed itself into a hash and compare itself for equality.
package collectable

import (
	"errors"
	"fmt"
	"hash"

	"github.com/amp-labs/amp-collections/compare"
	"github.com/amp-labs/amp-collections/hashing"
)

// ErrUnsupportedType is returned when attempting to hash an unsupported type.
var ErrUnsupportedType = errors.New("unsupported type for hashing")

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. Keys of a hash table must implement it:
// the hash chooses the bucket, and Equals resolves collisions
// within the bucket's chain.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// Of adapts a built-in comparable value into a Collectable key.
// It supports the numeric types, strings and booleans. For unsupported
// types UpdateHash returns ErrUnsupportedType, which makes Put fail.
//
// Example:
//
//	table, _ := hashtable.New[collectable.Of[string], int]()
//	_ = table.Put(collectable.Key("apples"), 3)
type Of[T comparable] struct {
	Value T
}

// Key wraps value as a Collectable.
func Key[T comparable](value T) Of[T] {
	return Of[T]{Value: value}
}

var _ Collectable[Of[int]] = Of[int]{}

// UpdateHash implements hashing.Hashable by delegating to the appropriate
// HashableX type based on the actual type of the value.
func (o Of[T]) UpdateHash(h hash.Hash) error { //nolint:cyclop
	switch typedValue := any(o.Value).(type) {
	case int:
		return hashing.HashableInt(typedValue).UpdateHash(h)
	case int8:
		return hashing.HashableInt64(typedValue).UpdateHash(h)
	case int16:
		return hashing.HashableInt64(typedValue).UpdateHash(h)
	case int32:
		return hashing.HashableInt64(typedValue).UpdateHash(h)
	case int64:
		return hashing.HashableInt64(typedValue).UpdateHash(h)
	case uint:
		return hashing.HashableUint64(typedValue).UpdateHash(h)
	case uint8:
		return hashing.HashableUint64(typedValue).UpdateHash(h)
	case uint16:
		return hashing.HashableUint64(typedValue).UpdateHash(h)
	case uint32:
		return hashing.HashableUint64(typedValue).UpdateHash(h)
	case uint64:
		return hashing.HashableUint64(typedValue).UpdateHash(h)
	case string:
		return hashing.HashableString(typedValue).UpdateHash(h)
	case bool:
		return hashing.HashableBool(typedValue).UpdateHash(h)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, typedValue)
	}
}

// Equals implements compare.Comparable by using the == operator.
func (o Of[T]) Equals(other Of[T]) bool {
	return o.Value == other.Value
}

// String returns the wrapped value formatted with %v.
func (o Of[T]) String() string {
	return fmt.Sprint(o.Value)
}
