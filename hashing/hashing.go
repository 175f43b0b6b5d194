// Package hashing defines the Hashable capability and the 64-bit hash
// sources used to place keys into hash table buckets.
package hashing

import (
	"hash"
	"hash/fnv"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. Equal objects must write
// identical bytes so that they land in the same bucket.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Hash64Func constructs a fresh 64-bit hash. Containers call it once per
// lookup, so implementations should be cheap to create.
type Hash64Func func() hash.Hash64

// NewXXH3 returns an XXH3 hasher. It is the default bucket hash.
func NewXXH3() hash.Hash64 {
	return xxh3.New()
}

// NewXXHash64 returns a classic XXH64 hasher.
func NewXXHash64() hash.Hash64 {
	return xxhash.New64()
}

// NewFNV64a returns an FNV-1a hasher.
func NewFNV64a() hash.Hash64 {
	return fnv.New64a()
}

// Sum64 feeds hashable into a hash produced by newHash and returns the digest.
// If the Hashable fails to update the hash, the error is returned as-is.
func Sum64(hashable Hashable, newHash Hash64Func) (uint64, error) {
	h := newHash()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}
