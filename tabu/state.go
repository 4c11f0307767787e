// Package tabu - incremental solution state.
//
// One state instance is exclusively owned and mutated in place by one
// search run. Independent snapshots are produced only when recording the
// best feasible solution or when perturbing.
//
// Invariants (must hold after every mutation):
//   - openFlag[i] is true for every facility with count[i] > 0, plus any
//     facility explicitly marked open (an opened-but-empty facility still
//     incurs its fixed cost until closed).
//   - load[i] and count[i] reflect exactly the customers assigned to i.
//   - fixedCost, assignCost, violation, objective, and the sparse
//     violations map are consistent with assignment, the open set, and the
//     current penalty weight.
//   - openList is openFlag's index set, kept sorted ascending.
package tabu

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlflp/sscflp"
)

// state is the mutable incremental representation of one candidate solution.
type state struct {
	inst *sscflp.Instance

	assignment []int     // customer j → facility
	openFlag   []bool    // facility i → open?
	openList   []int     // sorted open facility indices
	load       []float64 // facility i → assigned demand
	count      []int     // facility i → assigned customers

	fixedCost  float64
	assignCost float64
	violation  float64
	objective  float64

	violations map[int]float64 // facility → excess, over-capacity only

	lowerBound    float64 // passthrough for reporting
	hasLowerBound bool
}

// newState builds a state from an externally supplied solution and computes
// every aggregate field from scratch under the given penalty weight.
//
// Consistency repair: any facility with at least one assigned customer is
// forced into the open set even if absent from sol.OpenFacilities.
//
// Errors (configuration, fatal): sscflp.ErrDimensionMismatch /
// sscflp.ErrFacilityOutOfRange when the assignment or open list references
// an invalid facility index or disagrees with the instance shape.
//
// Complexity: O(m + n).
func newState(inst *sscflp.Instance, sol sscflp.Solution, penalty float64) (*state, error) {
	if err := inst.CheckAssignments(sol.Assignments); err != nil {
		return nil, err
	}

	var (
		m = inst.M()
		n = inst.N()
	)

	st := &state{
		inst:          inst,
		assignment:    append([]int(nil), sol.Assignments...),
		openFlag:      make([]bool, m),
		load:          make([]float64, m),
		count:         make([]int, m),
		violations:    make(map[int]float64),
		lowerBound:    sol.LowerBound,
		hasLowerBound: sol.HasLowerBound,
	}

	// Open set: supplied list unioned with every facility in use.
	var (
		i int
		j int
	)
	for _, i = range sol.OpenFacilities {
		if i < 0 || i >= m {
			return nil, sscflp.ErrFacilityOutOfRange
		}
		st.openFlag[i] = true
	}
	for j = 0; j < n; j++ {
		st.openFlag[st.assignment[j]] = true
	}
	for i = 0; i < m; i++ {
		if st.openFlag[i] {
			st.openList = append(st.openList, i)
		}
	}

	// Aggregates from scratch.
	for j = 0; j < n; j++ {
		i = st.assignment[j]
		st.count[i]++
		st.load[i] += inst.Demand(j)
		st.assignCost += inst.Cost(i, j)
	}
	for _, i = range st.openList {
		st.fixedCost += inst.FixedCost(i)
	}
	for i = 0; i < m; i++ {
		if excess := st.load[i] - inst.Capacity(i); excess > 0 {
			st.violation += excess
			st.violations[i] = excess
		}
	}
	st.refreshObjective(penalty)

	return st, nil
}

// clone returns an independent deep copy, never aliasing the receiver.
//
// Complexity: O(m + n).
func (st *state) clone() *state {
	out := &state{
		inst:          st.inst,
		assignment:    append([]int(nil), st.assignment...),
		openFlag:      append([]bool(nil), st.openFlag...),
		openList:      append([]int(nil), st.openList...),
		load:          append([]float64(nil), st.load...),
		count:         append([]int(nil), st.count...),
		fixedCost:     st.fixedCost,
		assignCost:    st.assignCost,
		violation:     st.violation,
		objective:     st.objective,
		violations:    make(map[int]float64, len(st.violations)),
		lowerBound:    st.lowerBound,
		hasLowerBound: st.hasLowerBound,
	}

	var (
		i int
		v float64
	)
	for i, v = range st.violations {
		out.violations[i] = v
	}

	return out
}

// isFeasible reports zero total violation.
func (st *state) isFeasible() bool { return st.violation == 0 }

// refreshObjective recomputes the penalized objective from the maintained
// totals under the given penalty weight.
func (st *state) refreshObjective(penalty float64) {
	st.objective = st.fixedCost + st.assignCost + penalty*st.violation
}

// refreshViolations re-derives the sparse violations entries for the given
// facilities only: entries no longer over capacity are removed, over-capacity
// entries are inserted or updated.
func (st *state) refreshViolations(facilities ...int) {
	var i int
	for _, i = range facilities {
		if excess := st.load[i] - st.inst.Capacity(i); excess > 0 {
			st.violations[i] = excess
		} else {
			delete(st.violations, i)
		}
	}
}

// openFacility marks i open and inserts it into the sorted open list.
// No-op when already open.
func (st *state) openFacility(i int) {
	if st.openFlag[i] {
		return
	}
	st.openFlag[i] = true

	pos := sort.SearchInts(st.openList, i)
	st.openList = append(st.openList, 0)
	copy(st.openList[pos+1:], st.openList[pos:])
	st.openList[pos] = i
}

// closeFacility marks i closed and removes it from the sorted open list.
// No-op when already closed.
func (st *state) closeFacility(i int) {
	if !st.openFlag[i] {
		return
	}
	st.openFlag[i] = false

	pos := sort.SearchInts(st.openList, i)
	if pos < len(st.openList) && st.openList[pos] == i {
		st.openList = append(st.openList[:pos], st.openList[pos+1:]...)
	}
}

// reassignCheapest reassigns every customer from scratch to its cheapest
// currently-open facility and rebuilds all aggregate fields. Used by the
// perturbation suite and the drop refiner, which change the open set too
// radically for incremental patching.
//
// Degenerate case: an empty open set is an infeasible state with unbounded
// violation - loads/counts are zeroed, violation and objective become +Inf,
// and the assignment is left untouched.
//
// Complexity: O(n·m + m).
func (st *state) reassignCheapest(penalty float64) {
	var (
		m = st.inst.M()
		n = st.inst.N()
		i int
		j int
	)

	for i = 0; i < m; i++ {
		st.load[i] = 0
		st.count[i] = 0
	}
	st.fixedCost = 0
	for _, i = range st.openList {
		st.fixedCost += st.inst.FixedCost(i)
	}

	if len(st.openList) == 0 {
		st.assignCost = 0
		st.violation = math.Inf(1)
		st.violations = make(map[int]float64)
		st.refreshObjective(penalty)

		return
	}

	st.assignCost = 0

	var (
		best     int
		bestCost float64
		c        float64
	)
	for j = 0; j < n; j++ {
		best = st.openList[0]
		bestCost = st.inst.Cost(best, j)
		for _, i = range st.openList[1:] {
			c = st.inst.Cost(i, j)
			if c < bestCost {
				best, bestCost = i, c
			}
		}
		st.assignment[j] = best
		st.count[best]++
		st.load[best] += st.inst.Demand(j)
		st.assignCost += bestCost
	}

	st.rebuildViolationAggregates(penalty)
}

// rebuildFromAssignment recomputes loads, counts, costs, and violations from
// the current assignment without touching the open set. Used after the
// shuffle perturbation, which rewrites the assignment wholesale.
//
// Complexity: O(n + m).
func (st *state) rebuildFromAssignment(penalty float64) {
	var (
		m = st.inst.M()
		n = st.inst.N()
		i int
		j int
	)

	for i = 0; i < m; i++ {
		st.load[i] = 0
		st.count[i] = 0
	}
	st.assignCost = 0
	for j = 0; j < n; j++ {
		i = st.assignment[j]
		st.count[i]++
		st.load[i] += st.inst.Demand(j)
		st.assignCost += st.inst.Cost(i, j)
	}

	st.fixedCost = 0
	for _, i = range st.openList {
		st.fixedCost += st.inst.FixedCost(i)
	}

	st.rebuildViolationAggregates(penalty)
}

// rebuildViolationAggregates recomputes total violation and the sparse map
// from the current loads, then refreshes the objective.
func (st *state) rebuildViolationAggregates(penalty float64) {
	st.violation = 0
	st.violations = make(map[int]float64)

	var i int
	for i = 0; i < st.inst.M(); i++ {
		if excess := st.load[i] - st.inst.Capacity(i); excess > 0 {
			st.violation += excess
			st.violations[i] = excess
		}
	}
	st.refreshObjective(penalty)
}

// toSolution produces an independent sscflp.Solution snapshot of the state.
//
// Complexity: O(m + n).
func (st *state) toSolution() sscflp.Solution {
	sol := sscflp.Solution{
		OpenFacilities:      append([]int(nil), st.openList...),
		Assignments:         append([]int(nil), st.assignment...),
		TotalFixedCost:      st.fixedCost,
		TotalAssignmentCost: st.assignCost,
		TotalCost:           st.fixedCost + st.assignCost,
		Objective:           st.objective,
		IsFeasible:          st.isFeasible(),
		CapacityViolations:  make(map[int]float64, len(st.violations)),
		LowerBound:          st.lowerBound,
		HasLowerBound:       st.hasLowerBound,
	}

	var (
		i int
		v float64
	)
	for i, v = range st.violations {
		sol.CapacityViolations[i] = v
	}

	return sol
}
