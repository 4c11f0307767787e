package sscflp

import "errors"

// Sentinel errors returned by instance and solution validation.
var (
	// ErrNilInstance indicates that a nil *Instance was passed where a
	// constructed instance is required.
	ErrNilInstance = errors.New("sscflp: instance is nil")

	// ErrNilMatrix indicates that the assignment-cost matrix is nil.
	ErrNilMatrix = errors.New("sscflp: assignment-cost matrix is nil")

	// ErrDimensionMismatch indicates that array lengths or matrix shape
	// disagree with the declared number of facilities/customers.
	ErrDimensionMismatch = errors.New("sscflp: dimension mismatch")

	// ErrNegativeValue indicates a negative capacity, demand, or fixed cost.
	ErrNegativeValue = errors.New("sscflp: negative capacity, demand, or fixed cost")

	// ErrNonFinite indicates a NaN or ±Inf entry in the input data.
	ErrNonFinite = errors.New("sscflp: non-finite input value")

	// ErrFacilityOutOfRange indicates an assignment referencing a facility
	// index outside [0..m-1].
	ErrFacilityOutOfRange = errors.New("sscflp: facility index out of range")
)

// Solution is the record produced by construction heuristics and the search
// engine, and consumed by callers. It is a plain value: all fields are
// exported, and Clone produces an independent deep copy.
//
// Infeasibility is a documented outcome, not a failure: IsFeasible=false
// with a populated CapacityViolations map is a valid Solution.
type Solution struct {
	// OpenFacilities lists the open facility indices in ascending order.
	OpenFacilities []int

	// Assignments maps customer j (slice index) to its serving facility.
	// len(Assignments) == n; every entry is a valid facility index.
	Assignments []int

	// TotalFixedCost is the sum of fixed costs over OpenFacilities.
	TotalFixedCost float64

	// TotalAssignmentCost is the sum of c[Assignments[j]][j] over customers.
	TotalAssignmentCost float64

	// TotalCost = TotalFixedCost + TotalAssignmentCost.
	TotalCost float64

	// Objective is the penalized objective at the moment the record was
	// produced: TotalCost + penalty_weight × total violation. For feasible
	// solutions it equals TotalCost.
	Objective float64

	// IsFeasible reports whether every facility load is within capacity.
	IsFeasible bool

	// CapacityViolations maps facility index → excess load, containing only
	// facilities currently over capacity. Empty for feasible solutions.
	CapacityViolations map[int]float64

	// LowerBound is an externally supplied bound (e.g. from an LP-relaxation
	// oracle), passed through unchanged for gap reporting. Meaningful only
	// when HasLowerBound is true.
	LowerBound    float64
	HasLowerBound bool
}
