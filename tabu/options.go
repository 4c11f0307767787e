package tabu

import (
	"math"
	"time"
)

// Default configuration values. They mirror the tuning the engine was
// originally calibrated with and are safe starting points for medium-sized
// instances.
const (
	// DefaultMaxIterations bounds the search loop.
	DefaultMaxIterations = 300

	// DefaultInitialPenalty is the starting infeasibility weight.
	DefaultInitialPenalty = 1000.0

	// DefaultPenaltyRate is the multiplicative penalty adjustment ε:
	// weight ×= (1+ε) when infeasible, ÷= (1+ε) when feasible.
	DefaultPenaltyRate = 0.1

	// DefaultSampleFraction is the neighborhood coverage fraction β:
	// each iteration samples ⌈β·n⌉ customers without replacement.
	DefaultSampleFraction = 0.4

	// DefaultMaxStagnation is the number of consecutive non-improving
	// iterations tolerated before a perturbation is forced.
	DefaultMaxStagnation = 40

	// DefaultTenureMin/Max bound the uniform tabu tenure draw.
	DefaultTenureMin = 5
	DefaultTenureMax = 15
)

// Options configures a Search. Build it with DefaultOptions and override
// fields as needed; NewSearch validates the combination.
//
// All randomness (customer sampling, candidate shuffling, tenure draws,
// perturbation choices) flows from one generator seeded with Seed, using
// the seed==0 ⇒ fixed-default-seed policy; two runs with identical Options
// and inputs produce bit-identical results.
type Options struct {
	// MaxIterations is the iteration budget. Must be >= 1.
	MaxIterations int

	// InitialPenalty is the starting infeasibility weight α. Must be > 0.
	InitialPenalty float64

	// PenaltyRate is the adjustment rate ε of the adaptive penalty. Must be > 0.
	PenaltyRate float64

	// SampleFraction is the neighborhood coverage fraction β ∈ (0, 1].
	SampleFraction float64

	// MaxStagnation is the stagnation threshold triggering perturbation.
	// Must be >= 1.
	MaxStagnation int

	// TenureMin/TenureMax bound the uniform tabu tenure draw; used when
	// Tenure is nil. Must satisfy 1 <= TenureMin <= TenureMax.
	TenureMin int
	TenureMax int

	// Seed seeds the run's RNG. Seed==0 selects a fixed default seed, so
	// the zero value is still fully deterministic.
	Seed int64

	// Tenure overrides the tenure policy. Nil selects
	// UniformTenure{TenureMin, TenureMax}. A caller-supplied stateful
	// policy (e.g. *FrequencyTenure) is shared across Run calls.
	Tenure TenurePolicy

	// TimeLimit is a soft wall-clock budget checked between iterations;
	// 0 means unlimited. Exceeding it stops the search early and returns
	// the normal result record, never an error.
	TimeLimit time.Duration

	// Interrupt, when non-nil, is polled between iterations; returning
	// true stops the search early, same as TimeLimit.
	Interrupt func() bool

	// OnIteration, when non-nil, receives a snapshot at the top of every
	// iteration. The callback must not retain or mutate engine state.
	OnIteration func(IterStats)
}

// DefaultOptions returns an Options struct initialized with the package
// defaults listed above. Seed is 0 (deterministic default stream), Tenure
// is nil (uniform draw), and no time limit, interrupt, or hook is set.
func DefaultOptions() Options {
	return Options{
		MaxIterations:  DefaultMaxIterations,
		InitialPenalty: DefaultInitialPenalty,
		PenaltyRate:    DefaultPenaltyRate,
		SampleFraction: DefaultSampleFraction,
		MaxStagnation:  DefaultMaxStagnation,
		TenureMin:      DefaultTenureMin,
		TenureMax:      DefaultTenureMax,
	}
}

// validateOptions checks internal consistency of Options.
// Only sentinel errors from types.go are returned.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MaxIterations < 1 {
		return ErrBadIterations
	}
	if opts.InitialPenalty <= 0 || math.IsNaN(opts.InitialPenalty) || math.IsInf(opts.InitialPenalty, 0) {
		return ErrBadPenalty
	}
	if opts.PenaltyRate <= 0 || math.IsNaN(opts.PenaltyRate) || math.IsInf(opts.PenaltyRate, 0) {
		return ErrBadPenaltyRate
	}
	if !(opts.SampleFraction > 0 && opts.SampleFraction <= 1) {
		return ErrBadSampleFraction
	}
	if opts.MaxStagnation < 1 {
		return ErrBadStagnation
	}
	// The tenure range is validated even when a custom policy is supplied.
	if opts.TenureMin < 1 || opts.TenureMax < opts.TenureMin {
		return ErrBadTenure
	}
	if opts.TimeLimit < 0 {
		return ErrBadTimeLimit
	}

	return nil
}
