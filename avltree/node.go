package avltree

import (
	"fmt"

	"github.com/amp-labs/amp-collections/assert"
	"github.com/amp-labs/amp-collections/sortable"
)

// node is a single AVL tree node. Each node exclusively owns its children;
// restructuring functions return the new root of the subtree they were given
// and the caller stores it in place of its old child link.
type node[T sortable.Sortable[T]] struct {
	value   T
	height  int // leaf = 0; an absent child counts as -1
	balance int // height(right) - height(left)
	left    *node[T]
	right   *node[T]
}

// String returns a string representation of the node showing its value and balance.
func (n *node[T]) String() string {
	return fmt.Sprintf("(%v h=%d b=%+d)", n.value, n.height, n.balance)
}

func heightOf[T sortable.Sortable[T]](n *node[T]) int {
	if n == nil {
		return -1
	}

	return n.height
}

// update recomputes height and balance from the children's stored heights.
func (n *node[T]) update() {
	lh, rh := heightOf(n.left), heightOf(n.right)

	n.height = 1 + max(lh, rh)
	n.balance = rh - lh
}

// rotateRight performs a right rotation around node y.
//
// Before:        y              After:         x
//
//	   / \                           / \
//	  x   c                         a   y
//	 / \              =>               / \
//	a   b                            b   c
//
//nolint:varnamelen,dupword // ASCII diagram
func rotateRight[T sortable.Sortable[T]](y *node[T]) *node[T] {
	assert.True(y.left != nil, "avltree: right rotation of %v without a left child", y)

	x := y.left
	y.left = x.right
	x.right = y

	y.update()
	x.update()

	return x
}

// rotateLeft performs a left rotation around node x.
//
// Before:                       After:
//
//	  x                             y
//	 / \                           / \
//	a   y                         x   c
//	   / \            =>         / \
//	  b   c                     a   b
//
//nolint:varnamelen,dupword // ASCII diagram
func rotateLeft[T sortable.Sortable[T]](x *node[T]) *node[T] {
	assert.True(x.right != nil, "avltree: left rotation of %v without a right child", x)

	y := x.right
	x.right = y.left
	y.left = x

	x.update()
	y.update()

	return y
}

// rebalance refreshes n's height and balance and, if n is out of balance by
// two, rotates it back. It returns the root of the (possibly new) subtree.
//
//	balance -2, left child  <= 0: right rotation          (left-left)
//	balance -2, left child  >  0: left then right rotation (left-right)
//	balance +2, right child >= 0: left rotation           (right-right)
//	balance +2, right child <  0: right then left rotation (right-left)
func rebalance[T sortable.Sortable[T]](n *node[T]) *node[T] {
	n.update()

	switch {
	case n.balance < -1:
		if n.left.balance > 0 {
			n.left = rotateLeft(n.left)
		}

		return rotateRight(n)
	case n.balance > 1:
		if n.right.balance < 0 {
			n.right = rotateRight(n.right)
		}

		return rotateLeft(n)
	default:
		return n
	}
}

func insert[T sortable.Sortable[T]](n *node[T], value T) *node[T] {
	if n == nil {
		return &node[T]{value: value}
	}

	if value.LessThan(n.value) {
		n.left = insert(n.left, value)
	} else {
		n.right = insert(n.right, value)
	}

	return rebalance(n)
}

// remove deletes value from the subtree rooted at n. A node with two children
// takes its replacement from the taller subtree, preferring the in-order
// successor on a tie, and then deletes the copied value from that subtree.
func remove[T sortable.Sortable[T]](n *node[T], value T) *node[T] {
	if n == nil {
		return nil
	}

	switch sortable.Compare(value, n.value) {
	case -1:
		n.left = remove(n.left, value)
	case 1:
		n.right = remove(n.right, value)
	default:
		switch {
		case n.left == nil:
			return n.right
		case n.right == nil:
			return n.left
		case n.left.height > n.right.height:
			n.value = rightmost(n.left).value
			n.left = remove(n.left, n.value)
		default:
			n.value = leftmost(n.right).value
			n.right = remove(n.right, n.value)
		}
	}

	return rebalance(n)
}

func leftmost[T sortable.Sortable[T]](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}

	return n
}

func rightmost[T sortable.Sortable[T]](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}

	return n
}
