// Package linkedlist provides a doubly linked sequential list.
package linkedlist

import (
	"fmt"
	"iter"

	errors2 "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/optional"
	"github.com/amp-labs/amp-collections/zero"
)

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// List is a doubly linked list. Pushing and popping at either end is O(1);
// positional access walks from whichever end is nearer.
// The zero value is an empty List ready to use.
//
// List is not thread-safe. Concurrent access must be synchronized by the caller.
type List[T any] struct {
	head  *node[T]
	tail  *node[T]
	count int
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// From creates a list holding the given values in order.
func From[T any](values ...T) *List[T] {
	l := New[T]()

	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.count
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.count == 0
}

// PushFront inserts value before the first element.
func (l *List[T]) PushFront(value T) {
	l.linkBefore(l.head, &node[T]{value: value})
}

// PushBack appends value after the last element.
func (l *List[T]) PushBack(value T) {
	l.linkBefore(nil, &node[T]{value: value})
}

// PopFront removes and returns the first element, or None if the list is empty.
func (l *List[T]) PopFront() optional.Value[T] {
	if l.head == nil {
		return optional.None[T]()
	}

	return optional.Some(l.unlink(l.head))
}

// PopBack removes and returns the last element, or None if the list is empty.
func (l *List[T]) PopBack() optional.Value[T] {
	if l.tail == nil {
		return optional.None[T]()
	}

	return optional.Some(l.unlink(l.tail))
}

// Front returns the first element without removing it.
func (l *List[T]) Front() optional.Value[T] {
	if l.head == nil {
		return optional.None[T]()
	}

	return optional.Some(l.head.value)
}

// Back returns the last element without removing it.
func (l *List[T]) Back() optional.Value[T] {
	if l.tail == nil {
		return optional.None[T]()
	}

	return optional.Some(l.tail.value)
}

// At returns the element at index.
func (l *List[T]) At(index int) (T, error) {
	n, err := l.nodeAt(index)
	if err != nil {
		return zero.Value[T](), err
	}

	return n.value, nil
}

// InsertAt inserts value so that it ends up at position index. Index may
// equal Len, in which case the value is appended.
func (l *List[T]) InsertAt(index int, value T) error {
	if index == l.count {
		l.PushBack(value)

		return nil
	}

	at, err := l.nodeAt(index)
	if err != nil {
		return err
	}

	l.linkBefore(at, &node[T]{value: value})

	return nil
}

// RemoveAt deletes the element at index and returns it.
func (l *List[T]) RemoveAt(index int) (T, error) {
	n, err := l.nodeAt(index)
	if err != nil {
		return zero.Value[T](), err
	}

	return l.unlink(n), nil
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.count = 0
}

// All returns an iterator over the elements, front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements, back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// linkBefore inserts n in front of at; a nil at means the tail position.
func (l *List[T]) linkBefore(at *node[T], n *node[T]) {
	if at == nil {
		n.prev = l.tail

		if l.tail != nil {
			l.tail.next = n
		} else {
			l.head = n
		}

		l.tail = n
	} else {
		n.next = at
		n.prev = at.prev

		if at.prev != nil {
			at.prev.next = n
		} else {
			l.head = n
		}

		at.prev = n
	}

	l.count++
}

func (l *List[T]) unlink(n *node[T]) T {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.prev = nil
	n.next = nil
	l.count--

	return n.value
}

func (l *List[T]) nodeAt(index int) (*node[T], error) {
	if index < 0 || index >= l.count {
		return nil, fmt.Errorf("%w: %d (length %d)", errors2.ErrIndexOutOfRange, index, l.count)
	}

	if index < l.count/2 {
		n := l.head
		for range index {
			n = n.next
		}

		return n, nil
	}

	n := l.tail
	for i := l.count - 1; i > index; i-- {
		n = n.prev
	}

	return n, nil
}
