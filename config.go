package hashbench

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// ============================================================================
// Defaults
// ============================================================================

const (
	// KeyLen is the length of every generated key.
	KeyLen = 10
	// MaxN is the largest dataset size of the sweep.
	MaxN = 1_000_000
	// Step is the distance between two consecutive sizes of the sweep.
	Step = 50_000
	// MaxValue is the inclusive upper bound of generated values.
	MaxValue = 100_000

	// hitPercent of each dataset is looked up as existing keys, missPercent
	// of it as freshly generated keys.
	hitPercent  = 90
	missPercent = 10
)

// ErrInvalidConfig is returned by New when an option leaves the
// configuration unusable.
var ErrInvalidConfig = errors.New("hashbench: invalid config")

// ============================================================================
// Configuration
// ============================================================================

// Config holds the parameters of a benchmark run. It is only reachable
// through the With* options.
type Config struct {
	// keyLen is the exact length of generated keys.
	keyLen int

	// maxN and step describe the size sweep {step, 2*step, ..., <= maxN}.
	maxN int
	step int

	// maxValue bounds generated values to [0, maxValue].
	maxValue int

	// table is the map implementation under test.
	table TableSpec

	// presize passes N as the capacity hint when a table is created.
	presize bool

	// gc forces a collection before each size so garbage left by the
	// previous size is not charged to the next one.
	gc bool

	// seed fixes the random streams. Zero means "pick one at New".
	seed uint64

	logger zerolog.Logger
}

func defaultConfig() Config {
	return Config{
		keyLen:   KeyLen,
		maxN:     MaxN,
		step:     Step,
		maxValue: MaxValue,
		table:    DefaultTable(),
		logger:   zerolog.Nop(),
	}
}

// WithKeyLen sets the length of generated keys.
func WithKeyLen(n int) func(*Config) {
	return func(c *Config) {
		c.keyLen = n
	}
}

// WithSweep sets the size sweep to {step, 2*step, ...} up to and including
// maxN when it is a multiple of step.
func WithSweep(step, maxN int) func(*Config) {
	return func(c *Config) {
		c.step = step
		c.maxN = maxN
	}
}

// WithMaxValue sets the inclusive upper bound of generated values.
func WithMaxValue(v int) func(*Config) {
	return func(c *Config) {
		c.maxValue = v
	}
}

// WithTable selects the map implementation under test.
func WithTable(spec TableSpec) func(*Config) {
	return func(c *Config) {
		c.table = spec
	}
}

// WithPresize creates every table with room for the whole dataset.
func WithPresize() func(*Config) {
	return func(c *Config) {
		c.presize = true
	}
}

// WithGC runs a garbage collection before each size is generated.
func WithGC() func(*Config) {
	return func(c *Config) {
		c.gc = true
	}
}

// WithSeed makes generated datasets reproducible. A zero seed is the same
// as not setting one.
func WithSeed(seed uint64) func(*Config) {
	return func(c *Config) {
		c.seed = seed
	}
}

// WithLogger sets the logger used for run diagnostics. Reports are never
// written to it.
func WithLogger(l zerolog.Logger) func(*Config) {
	return func(c *Config) {
		c.logger = l
	}
}

func (c *Config) validate() error {
	switch {
	case c.keyLen <= 0:
		return fmt.Errorf("%w: key length %d", ErrInvalidConfig, c.keyLen)
	case c.step <= 0:
		return fmt.Errorf("%w: step %d", ErrInvalidConfig, c.step)
	case c.maxN < c.step:
		return fmt.Errorf("%w: max %d below step %d", ErrInvalidConfig, c.maxN, c.step)
	case c.maxValue < 0 || c.maxValue == math.MaxInt:
		return fmt.Errorf("%w: max value %d", ErrInvalidConfig, c.maxValue)
	case c.table.New == nil:
		return fmt.Errorf("%w: table %q has no constructor", ErrInvalidConfig, c.table.Name)
	}
	return nil
}
