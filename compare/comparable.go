// Package compare defines the equality capability shared by every container
// element and key type.
package compare

// Comparable is implemented by types that decide their own equality.
// Equals must be reflexive, symmetric and transitive; containers rely on it
// to detect duplicates and to resolve hash collisions.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals reports whether a equals b according to a's Equals method.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
