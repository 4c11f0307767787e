package sscflp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Instance is an immutable SSCFLP problem instance.
//
// Construct via NewInstance; the zero value is not usable. All input slices
// and the cost matrix are defensively copied, so an Instance can be shared
// freely between collaborators for the lifetime of a search run.
type Instance struct {
	m, n       int
	capacities []float64
	demands    []float64
	fixedCosts []float64
	costs      *mat.Dense // m×n assignment costs
}

// NewInstance validates and builds an Instance.
//
// Contracts:
//   - len(capacities) == len(fixedCosts) == m ≥ 1.
//   - len(demands) == n ≥ 1.
//   - costs must be non-nil with shape m×n.
//   - capacities, demands, and fixed costs must be ≥ 0 and finite.
//   - assignment costs may have any sign but must be finite.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNegativeValue, ErrNonFinite.
//
// Complexity: O(m·n) time, O(m·n) space (defensive copies).
func NewInstance(capacities, demands, fixedCosts []float64, costs *mat.Dense) (*Instance, error) {
	if costs == nil {
		return nil, ErrNilMatrix
	}

	var (
		m = len(capacities)
		n = len(demands)
	)
	if m == 0 || n == 0 {
		return nil, ErrDimensionMismatch
	}
	if len(fixedCosts) != m {
		return nil, ErrDimensionMismatch
	}

	r, c := costs.Dims()
	if r != m || c != n {
		return nil, ErrDimensionMismatch
	}

	// Value scan: capacities/demands/fixed costs must be non-negative and
	// finite; assignment costs must be finite (sign unrestricted).
	var (
		i int
		j int
		v float64
	)
	for i = 0; i < m; i++ {
		if err := checkNonNegative(capacities[i]); err != nil {
			return nil, err
		}
		if err := checkNonNegative(fixedCosts[i]); err != nil {
			return nil, err
		}
	}
	for j = 0; j < n; j++ {
		if err := checkNonNegative(demands[j]); err != nil {
			return nil, err
		}
	}
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			v = costs.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonFinite
			}
		}
	}

	inst := &Instance{
		m:          m,
		n:          n,
		capacities: append([]float64(nil), capacities...),
		demands:    append([]float64(nil), demands...),
		fixedCosts: append([]float64(nil), fixedCosts...),
		costs:      mat.DenseCopyOf(costs),
	}

	return inst, nil
}

// checkNonNegative rejects NaN/±Inf and negative scalars.
func checkNonNegative(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNonFinite
	}
	if v < 0 {
		return ErrNegativeValue
	}

	return nil
}

// M returns the number of facilities.
func (in *Instance) M() int { return in.m }

// N returns the number of customers.
func (in *Instance) N() int { return in.n }

// Capacity returns facility i's capacity.
func (in *Instance) Capacity(i int) float64 { return in.capacities[i] }

// Demand returns customer j's demand.
func (in *Instance) Demand(j int) float64 { return in.demands[j] }

// FixedCost returns facility i's opening cost.
func (in *Instance) FixedCost(i int) float64 { return in.fixedCosts[i] }

// Cost returns the assignment cost of serving customer j from facility i.
func (in *Instance) Cost(i, j int) float64 { return in.costs.At(i, j) }

// TotalDemand returns Σ demands.
//
// Complexity: O(n).
func (in *Instance) TotalDemand() float64 {
	var (
		sum float64
		j   int
	)
	for j = 0; j < in.n; j++ {
		sum += in.demands[j]
	}

	return sum
}

// CheckAssignments verifies that assignments has length n and that every
// entry is a valid facility index in [0..m-1].
//
// Errors: ErrDimensionMismatch, ErrFacilityOutOfRange.
//
// Complexity: O(n).
func (in *Instance) CheckAssignments(assignments []int) error {
	if len(assignments) != in.n {
		return ErrDimensionMismatch
	}

	var j int
	for j = 0; j < in.n; j++ {
		if assignments[j] < 0 || assignments[j] >= in.m {
			return ErrFacilityOutOfRange
		}
	}

	return nil
}
