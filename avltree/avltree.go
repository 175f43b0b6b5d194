// Package avltree provides an ordered set backed by an AVL-balanced binary
// search tree.
//
// Every Insert and Remove rebalances each ancestor of the changed position on
// the way back to the root, so after any completed call:
//
//   - all values in a node's left subtree sort strictly before it, and all
//     values in its right subtree strictly after it; duplicates are never stored
//   - every node's balance factor, height(right) - height(left), is -1, 0 or +1
//   - every node's height is 1 + the larger of its children's heights, with an
//     absent child counting as -1
//
// This bounds the height by roughly 1.44·log2(n+2), giving O(log n) Contains,
// Insert and Remove.
package avltree

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-collections/dynarray"
	errors2 "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/optional"
	"github.com/amp-labs/amp-collections/sortable"
	"github.com/amp-labs/amp-collections/zero"
)

// Tree is an ordered set of unique values. The zero value is an empty Tree ready to use.
//
// Thread-safety: Tree is not thread-safe. Concurrent access must be synchronized by the caller.
type Tree[T sortable.Sortable[T]] struct {
	root  *node[T]
	count int
}

// New creates an empty tree.
func New[T sortable.Sortable[T]]() *Tree[T] {
	return &Tree[T]{}
}

// From creates a tree holding the given values. Duplicates are collapsed.
// Returns ErrInvalidArgument if any value is nil.
func From[T sortable.Sortable[T]](values ...T) (*Tree[T], error) {
	tree := New[T]()

	for _, v := range values {
		if _, err := tree.Insert(v); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

// Count returns the number of values in the tree. Time complexity: O(1).
func (t *Tree[T]) Count() int {
	return t.count
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.count == 0
}

// Height returns the number of edges on the longest root-to-leaf path:
// -1 for an empty tree, 0 for a single value.
func (t *Tree[T]) Height() int {
	return heightOf(t.root)
}

// Contains reports whether value is in the tree. A nil value is never contained.
// Time complexity: O(log n).
func (t *Tree[T]) Contains(value T) bool {
	if zero.IsNil(value) {
		return false
	}

	n := t.root

	for n != nil {
		switch sortable.Compare(value, n.value) {
		case 0:
			return true
		case -1:
			n = n.left
		default:
			n = n.right
		}
	}

	return false
}

// Insert adds value to the tree and rebalances it.
// Returns false with no error if the value is already present, and
// ErrInvalidArgument if value is nil. Time complexity: O(log n).
func (t *Tree[T]) Insert(value T) (bool, error) {
	if zero.IsNil(value) {
		return false, fmt.Errorf("%w: cannot insert a nil value", errors2.ErrInvalidArgument)
	}

	if t.Contains(value) {
		return false, nil
	}

	t.root = insert(t.root, value)
	t.count++

	return true, nil
}

// Remove deletes value from the tree and rebalances it.
// Returns false if value is nil or not present. Time complexity: O(log n).
func (t *Tree[T]) Remove(value T) bool {
	if !t.Contains(value) {
		return false
	}

	t.root = remove(t.root, value)
	t.count--

	return true
}

// Clear removes every value from the tree.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.count = 0
}

// Min returns the smallest value, or None if the tree is empty.
func (t *Tree[T]) Min() optional.Value[T] {
	if t.root == nil {
		return optional.None[T]()
	}

	return optional.Some(leftmost(t.root).value)
}

// Max returns the largest value, or None if the tree is empty.
func (t *Tree[T]) Max() optional.Value[T] {
	if t.root == nil {
		return optional.None[T]()
	}

	return optional.Some(rightmost(t.root).value)
}

// All returns an iterator that yields values in ascending order.
// Each call to the iterator starts a fresh traversal. The traversal keeps an
// explicit stack of at most Height()+1 nodes rather than recursing.
// The tree must not be modified while iterating.
//
// This enables Go 1.23+ range-over-func syntax: for v := range tree.All() { ... }
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := make([]*node[T], 0, t.Height()+1)
		n := t.root

		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}

			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.value) {
				return
			}

			n = n.right
		}
	}
}

// Entries returns all values in ascending order. Time complexity: O(n).
func (t *Tree[T]) Entries() *dynarray.Array[T] {
	out := dynarray.New[T](t.count)

	for v := range t.All() {
		out.Append(v)
	}

	return out
}
