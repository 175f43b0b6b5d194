package set

import (
	"iter"

	"github.com/amp-labs/amp-collections/avltree"
	"github.com/amp-labs/amp-collections/sortable"
)

// treeSet is a Set implementation backed by an AVL tree. Elements are kept
// in ascending order and every operation is O(log n).
type treeSet[T sortable.Sortable[T]] struct {
	tree *avltree.Tree[T]
}

var _ Set[sortable.Int] = (*treeSet[sortable.Int])(nil)

// NewTreeSet creates a new empty ordered set.
func NewTreeSet[T sortable.Sortable[T]]() Set[T] {
	return &treeSet[T]{tree: avltree.New[T]()}
}

func (s *treeSet[T]) AddAll(elements ...T) error {
	return addAll[T](s, elements...)
}

// Add returns ErrInvalidArgument for a nil element.
func (s *treeSet[T]) Add(element T) error {
	_, err := s.tree.Insert(element)

	return err
}

func (s *treeSet[T]) Remove(element T) error {
	s.tree.Remove(element)

	return nil
}

func (s *treeSet[T]) Clear() {
	s.tree.Clear()
}

func (s *treeSet[T]) Contains(element T) bool {
	return s.tree.Contains(element)
}

func (s *treeSet[T]) Size() int {
	return s.tree.Count()
}

func (s *treeSet[T]) Entries() []T {
	return entries[T](s)
}

func (s *treeSet[T]) Seq() iter.Seq[T] {
	return s.tree.All()
}

func (s *treeSet[T]) Union(other Set[T]) (Set[T], error) {
	return union[T](NewTreeSet[T](), s, other)
}

func (s *treeSet[T]) Intersection(other Set[T]) (Set[T], error) {
	return intersection[T](NewTreeSet[T](), s, other)
}
