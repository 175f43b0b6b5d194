// Package set provides unique-element collections on top of the container
// engines: an ordered set backed by avltree and an unordered set backed by
// hashtable.
package set

import (
	"iter"
)

// A Set is a collection of unique elements.
//
// Thread-safety: implementations are not thread-safe. Concurrent access must be
// synchronized by the caller.
type Set[T any] interface {
	// AddAll adds multiple elements to the set. It stops at the first element
	// that cannot be added and returns its error.
	AddAll(elements ...T) error

	// Add adds a single element to the set. If the element already exists
	// in the set, no error is returned.
	Add(element T) error

	// Remove removes an element from the set.
	// If the element is not in the set, no error is returned.
	Remove(element T) error

	// Clear removes all elements from the set.
	Clear()

	// Contains checks if an element exists in the set.
	Contains(element T) bool

	// Size returns the number of elements in the set.
	Size() int

	// Entries returns all elements in the set as a slice, in Seq order.
	Entries() []T

	// Seq returns an iterator over the elements. Ordered sets yield ascending
	// values; hashed sets yield bucket order.
	Seq() iter.Seq[T]

	// Union returns a new set of the same kind containing all elements from both sets.
	Union(other Set[T]) (Set[T], error)

	// Intersection returns a new set of the same kind containing only elements present in both sets.
	Intersection(other Set[T]) (Set[T], error)
}

func addAll[T any](s Set[T], elements ...T) error {
	for _, elem := range elements {
		if err := s.Add(elem); err != nil {
			return err
		}
	}

	return nil
}

func entries[T any](s Set[T]) []T {
	items := make([]T, 0, s.Size())

	for item := range s.Seq() {
		items = append(items, item)
	}

	return items
}

func union[T any](out, a, b Set[T]) (Set[T], error) {
	for _, src := range []Set[T]{a, b} {
		for item := range src.Seq() {
			if err := out.Add(item); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func intersection[T any](out, a, b Set[T]) (Set[T], error) {
	for item := range a.Seq() {
		if b.Contains(item) {
			if err := out.Add(item); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
