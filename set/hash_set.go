package set

import (
	"iter"

	"github.com/amp-labs/amp-collections/collectable"
	"github.com/amp-labs/amp-collections/hashing"
	"github.com/amp-labs/amp-collections/hashtable"
)

// hashSet is a Set implementation backed by a chained hash table with empty values.
type hashSet[T collectable.Collectable[T]] struct {
	table *hashtable.Table[T, struct{}]
	opts  []hashtable.Option
}

var _ Set[hashing.HashableString] = (*hashSet[hashing.HashableString])(nil)

// NewHashSet creates a new empty unordered set. The options configure the
// underlying table and are reused for sets derived by Union and Intersection.
func NewHashSet[T collectable.Collectable[T]](opts ...hashtable.Option) (Set[T], error) {
	table, err := hashtable.New[T, struct{}](opts...)
	if err != nil {
		return nil, err
	}

	return &hashSet[T]{table: table, opts: opts}, nil
}

func (s *hashSet[T]) AddAll(elements ...T) error {
	return addAll[T](s, elements...)
}

// Add returns ErrInvalidArgument for a nil element, or the element's hashing error.
func (s *hashSet[T]) Add(element T) error {
	return s.table.Put(element, struct{}{})
}

func (s *hashSet[T]) Remove(element T) error {
	_, err := s.table.Remove(element)

	return err
}

func (s *hashSet[T]) Clear() {
	s.table.Clear()
}

func (s *hashSet[T]) Contains(element T) bool {
	return s.table.ContainsKey(element)
}

func (s *hashSet[T]) Size() int {
	return s.table.Size()
}

func (s *hashSet[T]) Entries() []T {
	return entries[T](s)
}

func (s *hashSet[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for key := range s.table.All() {
			if !yield(key) {
				return
			}
		}
	}
}

func (s *hashSet[T]) Union(other Set[T]) (Set[T], error) {
	out, err := NewHashSet[T](s.opts...)
	if err != nil {
		return nil, err
	}

	return union[T](out, s, other)
}

func (s *hashSet[T]) Intersection(other Set[T]) (Set[T], error) {
	out, err := NewHashSet[T](s.opts...)
	if err != nil {
		return nil, err
	}

	return intersection[T](out, s, other)
}
