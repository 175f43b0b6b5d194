// Package bst provides a plain, unbalanced binary search tree set.
// Its height depends on insertion order; use avltree when O(log n) bounds matter.
package bst

import (
	"fmt"
	"iter"

	errors2 "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/sortable"
	"github.com/amp-labs/amp-collections/zero"
)

type node[T sortable.Sortable[T]] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is an ordered set of unique values. The zero value is an empty Tree ready to use.
//
// Tree is not thread-safe. Concurrent access must be synchronized by the caller.
type Tree[T sortable.Sortable[T]] struct {
	root  *node[T]
	count int
}

// New creates an empty tree.
func New[T sortable.Sortable[T]]() *Tree[T] {
	return &Tree[T]{}
}

// Count returns the number of values in the tree.
func (t *Tree[T]) Count() int {
	return t.count
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.count == 0
}

// Contains reports whether value is in the tree.
func (t *Tree[T]) Contains(value T) bool {
	if zero.IsNil(value) {
		return false
	}

	for n := t.root; n != nil; {
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

// Insert adds value to the tree. It returns false when the value is already
// present and ErrInvalidArgument when value is nil.
func (t *Tree[T]) Insert(value T) (bool, error) {
	if zero.IsNil(value) {
		return false, fmt.Errorf("%w: nil value", errors2.ErrInvalidArgument)
	}

	pos := &t.root

	for *pos != nil {
		switch sortable.Compare(value, (*pos).value) {
		case 0:
			return false, nil
		case -1:
			pos = &(*pos).left
		default:
			pos = &(*pos).right
		}
	}

	*pos = &node[T]{value: value}
	t.count++

	return true, nil
}

// Remove deletes value from the tree and reports whether it was present.
// A node with two children takes the value of its in-order successor, the
// leftmost node of its right subtree, which is then unlinked.
func (t *Tree[T]) Remove(value T) bool {
	if zero.IsNil(value) {
		return false
	}

	pos := &t.root

	for *pos != nil {
		switch sortable.Compare(value, (*pos).value) {
		case 0:
			t.unlink(pos)
			t.count--

			return true
		case -1:
			pos = &(*pos).left
		default:
			pos = &(*pos).right
		}
	}

	return false
}

func (t *Tree[T]) unlink(pos **node[T]) {
	target := *pos

	switch {
	case target.left == nil:
		*pos = target.right
	case target.right == nil:
		*pos = target.left
	default:
		succ := &target.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}

		target.value = (*succ).value
		*succ = (*succ).right
	}
}

// Height returns the number of edges on the longest root-to-leaf path,
// or -1 for an empty tree.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T sortable.Sortable[T]](n *node[T]) int {
	if n == nil {
		return -1
	}

	return 1 + max(height(n.left), height(n.right))
}

// Clear removes every value.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.count = 0
}

// All returns an iterator over the values in ascending order.
// The tree must not be modified while iterating.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*node[T]

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
