package tabu

import "errors"

// Sentinel errors returned by option and input validation.
var (
	// ErrNilInstance indicates that a nil *sscflp.Instance was supplied.
	ErrNilInstance = errors.New("tabu: instance is nil")

	// ErrBadIterations indicates MaxIterations < 1.
	ErrBadIterations = errors.New("tabu: MaxIterations must be >= 1")

	// ErrBadPenalty indicates a non-positive or non-finite InitialPenalty.
	ErrBadPenalty = errors.New("tabu: InitialPenalty must be positive and finite")

	// ErrBadPenaltyRate indicates a non-positive or non-finite PenaltyRate.
	ErrBadPenaltyRate = errors.New("tabu: PenaltyRate must be positive and finite")

	// ErrBadSampleFraction indicates SampleFraction outside (0, 1].
	ErrBadSampleFraction = errors.New("tabu: SampleFraction must be in (0, 1]")

	// ErrBadStagnation indicates MaxStagnation < 1.
	ErrBadStagnation = errors.New("tabu: MaxStagnation must be >= 1")

	// ErrBadTenure indicates TenureMin < 1 or TenureMax < TenureMin.
	ErrBadTenure = errors.New("tabu: tenure range must satisfy 1 <= TenureMin <= TenureMax")

	// ErrBadTimeLimit indicates a negative TimeLimit.
	ErrBadTimeLimit = errors.New("tabu: TimeLimit must be non-negative")
)

// IterStats is the per-iteration snapshot passed to Options.OnIteration.
// All fields describe the live state at the top of the iteration, before
// candidate moves are evaluated.
type IterStats struct {
	// Iteration is the zero-based iteration index.
	Iteration int

	// Objective is the current penalized objective.
	Objective float64

	// Violation is the current total capacity violation.
	Violation float64

	// Penalty is the current infeasibility penalty weight.
	Penalty float64

	// Feasible reports whether the current state has zero violation.
	Feasible bool

	// OpenCount is the number of currently open facilities.
	OpenCount int

	// Stagnation counts consecutive iterations without a new best feasible.
	Stagnation int

	// BestObjective is the best feasible objective recorded so far;
	// meaningful only when HasBest is true.
	BestObjective float64
	HasBest       bool
}
