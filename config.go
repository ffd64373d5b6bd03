package kraitchik

import (
	"fmt"
	"log/slog"
)

// maxRelationsLimit bounds MaxRelations; the subset search enumerates 2^k
// subsets and must stay far from that becoming unbounded work.
const maxRelationsLimit = 62

// Config controls a Factorizer.
type Config struct {
	// MaxRounds is the number of cursor rounds tried before giving up.
	MaxRounds int

	// MaxRelations is the largest relation list the subset search runs over.
	MaxRelations int

	// StrictSmoothness discards relations whose Q(x) is not smooth over the
	// factor base instead of keeping their partial factorization.
	StrictSmoothness bool

	// Logger receives diagnostics. Accepted squares are logged at Debug
	// with their summed exponent vector and subset. Nil discards.
	Logger *slog.Logger

	// Metrics, if not nil, records search statistics.
	Metrics *Metrics
}

// DefaultConfig returns the configuration used by Factorize.
func DefaultConfig() *Config {
	return &Config{
		MaxRounds:    10000,
		MaxRelations: 24,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxRounds <= 0 {
		return fmt.Errorf("%w: max rounds must be positive, got %d", ErrInvalidConfig, c.MaxRounds)
	}
	if c.MaxRelations <= 0 || c.MaxRelations > maxRelationsLimit {
		return fmt.Errorf("%w: max relations must be in [1, %d], got %d",
			ErrInvalidConfig, maxRelationsLimit, c.MaxRelations)
	}
	return nil
}

// WithMaxRounds sets the round limit.
func (c *Config) WithMaxRounds(n int) *Config {
	c.MaxRounds = n
	return c
}

// WithMaxRelations sets the relation limit.
func (c *Config) WithMaxRelations(n int) *Config {
	c.MaxRelations = n
	return c
}

// WithStrictSmoothness sets whether non-smooth relations are discarded.
func (c *Config) WithStrictSmoothness(strict bool) *Config {
	c.StrictSmoothness = strict
	return c
}

// WithLogger sets the diagnostic logger.
func (c *Config) WithLogger(logger *slog.Logger) *Config {
	c.Logger = logger
	return c
}

// WithMetrics sets the metrics collector.
func (c *Config) WithMetrics(m *Metrics) *Config {
	c.Metrics = m
	return c
}
