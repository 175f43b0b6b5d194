// Package dynarray provides a growable random-access sequence backed by a
// buffer whose capacity doubles when full, giving amortized O(1) appends.
package dynarray

import (
	"fmt"
	"iter"

	errors2 "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/zero"
)

// DefaultCapacity is the buffer size allocated for an array created without
// a capacity hint, and the size of the first allocation of a zero Array.
const DefaultCapacity = 4

// Array is an ordered, indexable sequence of T. The zero value is an empty
// Array ready to use.
//
// Array is not thread-safe. Concurrent access must be synchronized by the caller.
type Array[T any] struct {
	items []T
	count int
}

// New creates an empty array with room for capacity elements before the
// first reallocation. Non-positive capacities fall back to DefaultCapacity.
func New[T any](capacity int) *Array[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Array[T]{items: make([]T, capacity)}
}

// From creates an array holding the given values in order.
func From[T any](values ...T) *Array[T] {
	arr := New[T](len(values))

	for _, v := range values {
		arr.Append(v)
	}

	return arr
}

// Append adds value at the tail, doubling the buffer when it is full.
func (a *Array[T]) Append(value T) {
	if a.count == len(a.items) {
		a.grow()
	}

	a.items[a.count] = value
	a.count++
}

// At returns the element at index.
func (a *Array[T]) At(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		return zero.Value[T](), err
	}

	return a.items[index], nil
}

// Set replaces the element at index.
func (a *Array[T]) Set(index int, value T) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}

	a.items[index] = value

	return nil
}

// RemoveAt deletes the element at index, shifting later elements down by one,
// and returns the removed element.
func (a *Array[T]) RemoveAt(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		return zero.Value[T](), err
	}

	removed := a.items[index]

	copy(a.items[index:a.count-1], a.items[index+1:a.count])

	a.count--
	a.items[a.count] = zero.Value[T]()

	return removed, nil
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return a.count
}

// Cap returns the number of elements the array can hold before it reallocates.
func (a *Array[T]) Cap() int {
	return len(a.items)
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.count == 0
}

// Clear removes every element. The buffer is kept for reuse.
func (a *Array[T]) Clear() {
	clear(a.items[:a.count])

	a.count = 0
}

// All returns an iterator over index/element pairs, front to back.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.count; i++ {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.count; i++ {
			if !yield(a.items[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements as a plain slice.
func (a *Array[T]) Slice() []T {
	out := make([]T, a.count)

	copy(out, a.items[:a.count])

	return out
}

func (a *Array[T]) grow() {
	capacity := len(a.items) * 2
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	items := make([]T, capacity)

	copy(items, a.items[:a.count])

	a.items = items
}

func (a *Array[T]) checkIndex(index int) error {
	if index < 0 || index >= a.count {
		return fmt.Errorf("%w: %d (length %d)", errors2.ErrIndexOutOfRange, index, a.count)
	}

	return nil
}
