package set

import (
	"sort"

	"facette.io/natsort"
	"github.com/amp-labs/amp-collections/hashing"
	"github.com/amp-labs/amp-collections/hashtable"
)

// StringSet is a hashed set of plain strings.
// It provides additional methods for sorting entries.
type StringSet struct {
	set Set[hashing.HashableString]
}

// NewStringSet creates a new StringSet. The options configure the underlying table.
func NewStringSet(opts ...hashtable.Option) (*StringSet, error) {
	s, err := NewHashSet[hashing.HashableString](opts...)
	if err != nil {
		return nil, err
	}

	return &StringSet{set: s}, nil
}

// AddAll adds multiple string elements to the set.
func (s *StringSet) AddAll(element ...string) error {
	for _, elem := range element {
		if err := s.Add(elem); err != nil {
			return err
		}
	}

	return nil
}

// Add adds a single string element to the set.
func (s *StringSet) Add(element string) error {
	return s.set.Add(hashing.HashableString(element))
}

// Remove removes a string element from the set.
func (s *StringSet) Remove(element string) error {
	return s.set.Remove(hashing.HashableString(element))
}

// Contains checks if a string element exists in the set.
func (s *StringSet) Contains(element string) bool {
	return s.set.Contains(hashing.HashableString(element))
}

// Size returns the number of elements in the set.
func (s *StringSet) Size() int {
	return s.set.Size()
}

// Entries returns all string elements in the set. The order is not guaranteed.
func (s *StringSet) Entries() []string {
	items := make([]string, 0, s.Size())

	for item := range s.set.Seq() {
		items = append(items, string(item))
	}

	return items
}

// SortedEntries returns all string elements in the set sorted alphabetically.
func (s *StringSet) SortedEntries() []string {
	items := s.Entries()

	sort.Strings(items)

	return items
}

// NaturalSortedEntries returns all string elements in the set sorted using natural sort order.
// Natural sort treats numbers within strings numerically (e.g., "file2" comes before "file10").
func (s *StringSet) NaturalSortedEntries() []string {
	items := s.Entries()

	natsort.Sort(items)

	return items
}
