package retrace

import (
	"github.com/coregx/retrace/backtrack"
	"github.com/coregx/retrace/syntax"
)

// Config controls compile- and match-time resource limits.
//
// Example:
//
//	config := retrace.DefaultConfig()
//	config.MaxSteps = 10_000 // fail fast on pathological patterns
//	re, err := retrace.CompileWithConfig(`(a+)+b`, config)
type Config struct {
	// MaxSteps is the backtracking step budget per match attempt. Every
	// executed instruction costs one step; crossing the budget aborts
	// the attempt with ErrResourceExhausted.
	// Default: backtrack.DefaultMaxSteps (1M).
	MaxSteps int

	// MaxRepeatCount caps {m,n} quantifier bounds. Bounded repetitions
	// are unrolled, so the cap also bounds program growth.
	// Default: syntax.DefaultMaxRepeat (1000).
	MaxRepeatCount int

	// MaxProgSize caps the compiled instruction count; beyond it,
	// Compile fails with ErrTooComplex.
	// Default: backtrack.DefaultMaxProgSize (10000).
	MaxProgSize int

	// EnablePrefilter enables literal-based candidate filtering for the
	// unanchored search loop. Prefilters never change match semantics.
	// Default: true.
	EnablePrefilter bool

	// MinLiteralLen is the minimum prefix length worth prefiltering;
	// shorter literals produce too many false candidates.
	// Default: 1.
	MinLiteralLen int

	// MaxLiterals limits how many alternative prefixes a prefilter may
	// track.
	// Default: 64.
	MaxLiterals int
}

// DefaultConfig returns the limits used by Compile.
func DefaultConfig() Config {
	return Config{
		MaxSteps:        backtrack.DefaultMaxSteps,
		MaxRepeatCount:  syntax.DefaultMaxRepeat,
		MaxProgSize:     backtrack.DefaultMaxProgSize,
		EnablePrefilter: true,
		MinLiteralLen:   1,
		MaxLiterals:     64,
	}
}

// Validate checks that every limit is in range.
func (c Config) Validate() error {
	if c.MaxSteps < 1000 || c.MaxSteps > 1_000_000_000 {
		return &ConfigError{
			Field:   "MaxSteps",
			Message: "must be between 1,000 and 1,000,000,000",
		}
	}
	if c.MaxRepeatCount < 1 || c.MaxRepeatCount > 10_000 {
		return &ConfigError{
			Field:   "MaxRepeatCount",
			Message: "must be between 1 and 10,000",
		}
	}
	if c.MaxProgSize < 100 || c.MaxProgSize > 1_000_000 {
		return &ConfigError{
			Field:   "MaxProgSize",
			Message: "must be between 100 and 1,000,000",
		}
	}
	if c.EnablePrefilter {
		if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
			return &ConfigError{
				Field:   "MinLiteralLen",
				Message: "must be between 1 and 64",
			}
		}
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
	}
	return nil
}

// ConfigError reports an out-of-range configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "retrace: invalid config: " + e.Field + ": " + e.Message
}
