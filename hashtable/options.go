package hashtable

import (
	"fmt"
	"log/slog"
	"math"

	errors2 "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/hashing"
)

const (
	// MinCapacity is the smallest bucket array a table will use. Smaller
	// positive capacities are raised to it.
	MinCapacity = 3

	// DefaultCapacity is the bucket count used when no capacity is given.
	DefaultCapacity = 16

	// DefaultMaxLoadFactor is the load factor used when none is given.
	DefaultMaxLoadFactor = 0.75
)

// options is used to configure a Table.
type options struct {
	capacity      int
	maxLoadFactor float64
	newHash       hashing.Hash64Func
	logger        *slog.Logger
}

// Option is a functional option for configuring a Table via New.
type Option func(*options)

// WithCapacity sets the initial number of buckets. Values below MinCapacity are
// raised to it; zero or negative values make New fail.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithMaxLoadFactor sets the ratio of entries to buckets the table keeps
// itself under. It must lie in (0, 1].
func WithMaxLoadFactor(factor float64) Option {
	return func(o *options) {
		o.maxLoadFactor = factor
	}
}

// WithHasher sets the hash used to pick a key's bucket. The default is
// hashing.NewXXH3.
func WithHasher(newHash hashing.Hash64Func) Option {
	return func(o *options) {
		o.newHash = newHash
	}
}

// WithLogger sets the logger that receives resize events at debug level.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func defaultOptions() options {
	return options{
		capacity:      DefaultCapacity,
		maxLoadFactor: DefaultMaxLoadFactor,
		newHash:       hashing.NewXXH3,
		logger:        slog.New(slog.DiscardHandler),
	}
}

// normalize validates the options and applies the capacity floor.
func (o *options) normalize() error {
	if err := validate(o.capacity, o.maxLoadFactor); err != nil {
		return err
	}

	if o.newHash == nil {
		return fmt.Errorf("%w: hasher must not be nil", errors2.ErrInvalidArgument)
	}

	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	o.capacity = max(o.capacity, MinCapacity)

	return nil
}

func validate(capacity int, maxLoadFactor float64) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", errors2.ErrInvalidArgument, capacity)
	}

	if math.IsNaN(maxLoadFactor) || maxLoadFactor <= 0 || maxLoadFactor > 1 {
		return fmt.Errorf("%w: max load factor must be in (0, 1], got %v", errors2.ErrInvalidArgument, maxLoadFactor)
	}

	return nil
}
