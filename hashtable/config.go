package hashtable

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config holds the sizing parameters of a Table in a form that can be kept in
// YAML alongside other service settings:
//
//	capacity: 64
//	maxLoadFactor: 0.5
type Config struct {
	Capacity      int     `yaml:"capacity"`
	MaxLoadFactor float64 `yaml:"maxLoadFactor"`
}

// DefaultConfig returns the sizing New uses when given no options.
func DefaultConfig() Config {
	return Config{
		Capacity:      DefaultCapacity,
		MaxLoadFactor: DefaultMaxLoadFactor,
	}
}

// ParseConfig decodes YAML into a Config. Fields missing from the document keep
// their DefaultConfig values. The result is validated.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing hash table config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports whether the config would be accepted by New.
func (c Config) Validate() error {
	return validate(c.Capacity, c.MaxLoadFactor)
}

// Options converts the config into Options for New.
func (c Config) Options() []Option {
	return []Option{
		WithCapacity(c.Capacity),
		WithMaxLoadFactor(c.MaxLoadFactor),
	}
}
