// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as elements of ordered containers.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], and [String].
// These types are designed to work with ordered collections like the AVL tree
// (see [github.com/amp-labs/amp-collections/avltree.New]) and the plain binary
// search tree (see [github.com/amp-labs/amp-collections/bst.New]).
//
// The Sortable interface extends [github.com/amp-labs/amp-collections/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Version struct {
//	    Major, Minor int
//	}
//
//	func (v Version) Equals(other Version) bool {
//	    return v.Major == other.Major && v.Minor == other.Minor
//	}
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe
// for read operations. The containers using them are not thread-safe and require
// external synchronization for concurrent access.
package sortable
