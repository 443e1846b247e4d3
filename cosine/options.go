// Package cosine: configuration for the aligner. Defaults are the
// single source of truth; DefaultOptions mirrors them exactly.
package cosine

import "log/slog"

// Defaults.
const (
	// DefaultSteps is the bootstrap resample / permutation trial count.
	DefaultSteps = 10000

	// DefaultConfidence is the two-sided BCa confidence level.
	DefaultConfidence = 0.95

	// DefaultSeed is the global seed of the deterministic regime; every
	// job derives its own generator from it.
	DefaultSeed = 1

	// DefaultWorkers of 0 means "one worker per available CPU".
	DefaultWorkers = 0
)

// NaNPolicy decides what happens when a bootstrap resample produces a
// zero-norm (NaN) cosine.
type NaNPolicy int

const (
	// NaNZero resets a NaN resample to 0. Matches the observed
	// behavior of the original pipeline.
	NaNZero NaNPolicy = iota

	// NaNPropagate keeps the NaN; a single degenerate resample then
	// yields NaN interval bounds.
	NaNPropagate
)

// Options configures one Align call. The zero value is not valid; use
// DefaultOptions.
type Options struct {
	// Steps is the number of bootstrap resamples or permutation trials.
	Steps int

	// Permutation selects the permutation p-value statistic instead of
	// the BCa bootstrap interval.
	Permutation bool

	// Confidence is the BCa interval level (ignored in permutation mode).
	Confidence float64

	// NaN is the resample degeneracy policy.
	NaN NaNPolicy

	// Seed is the global seed; per-job seeds derive from it, the level
	// pair and the entity index, so a fixed Seed fixes every statistic.
	Seed int64

	// Workers bounds the pool; 0 means runtime.NumCPU().
	Workers int

	// Logger receives numeric-degeneracy warnings; nil means
	// slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Steps:      DefaultSteps,
		Confidence: DefaultConfidence,
		NaN:        NaNZero,
		Seed:       DefaultSeed,
		Workers:    DefaultWorkers,
	}
}

// validate enforces the option invariants shared by both statistics.
func (o Options) validate() error {
	if o.Steps < 1 {
		return ErrBadSteps
	}
	if o.Confidence <= 0 || o.Confidence >= 1 {
		return ErrBadConfidence
	}

	return nil
}
