package hashing

import (
	"bytes"
	"encoding/binary"
	"hash"
)

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))
	if err != nil {
		return err
	}

	return nil
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

// HashableBytes hashes and compares by content.
type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

func (b HashableBytes) Equals(other HashableBytes) bool {
	return bytes.Equal(b, other)
}

// HashableInt writes its value as 8 little-endian bytes, so equal values
// hash identically on every platform.
type HashableInt int

func (i HashableInt) UpdateHash(h hash.Hash) error {
	return HashableInt64(i).UpdateHash(h)
}

func (i HashableInt) Equals(other HashableInt) bool {
	return i == other
}

type HashableInt64 int64

func (i HashableInt64) UpdateHash(h hash.Hash) error {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(i))

	_, err := h.Write(buf[:])

	return err
}

func (i HashableInt64) Equals(other HashableInt64) bool {
	return i == other
}

type HashableUint64 uint64

func (u HashableUint64) UpdateHash(h hash.Hash) error {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(u))

	_, err := h.Write(buf[:])

	return err
}

func (u HashableUint64) Equals(other HashableUint64) bool {
	return u == other
}

type HashableBool bool

func (b HashableBool) UpdateHash(h hash.Hash) error {
	var buf [1]byte

	if b {
		buf[0] = 1
	}

	_, err := h.Write(buf[:])

	return err
}

func (b HashableBool) Equals(other HashableBool) bool {
	return b == other
}
