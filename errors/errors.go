// Package errors holds the sentinel errors shared by the containers and a
// small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrInvalidArgument is returned when a nil element or key is passed where one
	// is required, or when a container is constructed with out-of-range parameters.
	// The operation performs no mutation when it fails this way.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrKeyNotFound is returned by lookups that require the key to be present.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOutOfRange is returned by positional access outside [0, Len).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvariantViolated is wrapped by structural self-checks when they find a defect.
	ErrInvariantViolated = errors.New("invariant violated")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
