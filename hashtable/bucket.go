package hashtable

import (
	"github.com/amp-labs/amp-collections/collectable"
	"github.com/amp-labs/amp-collections/compare"
)

// entry is a single key/value pair in a bucket's chain. Links never cross
// buckets. The key's full hash is kept so that a resize can re-place the
// entry without hashing the key again.
type entry[K collectable.Collectable[K], V any] struct {
	key   K
	value V
	hash  uint64
	prev  *entry[K, V]
	next  *entry[K, V]
}

// bucket is a doubly linked chain of entries, kept in insertion order.
type bucket[K collectable.Collectable[K], V any] struct {
	head *entry[K, V]
	tail *entry[K, V]
}

// find returns the entry whose key equals key, or nil.
func (b *bucket[K, V]) find(key K) *entry[K, V] {
	for e := b.head; e != nil; e = e.next {
		if compare.Equals[K](key, e.key) {
			return e
		}
	}

	return nil
}

// push links e at the tail of the chain.
func (b *bucket[K, V]) push(e *entry[K, V]) {
	e.prev = b.tail
	e.next = nil

	if b.tail != nil {
		b.tail.next = e
	} else {
		b.head = e
	}

	b.tail = e
}

// unlink removes e from the chain in O(1).
func (b *bucket[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		b.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		b.tail = e.prev
	}

	e.prev = nil
	e.next = nil
}
