// Package tabu - moves, delta evaluation, and move application.
//
// The delta computation lives in exactly one pure function (computeDelta)
// consumed by both the evaluator and the applier: evaluation reads it
// without mutating, application commits exactly the same deltas. The two
// code paths can therefore never drift apart.
package tabu

import "math"

// moveKind discriminates the move tagged union.
type moveKind uint8

const (
	// relocateMove reassigns one customer to a different facility.
	relocateMove moveKind = iota

	// swapMove exchanges two customers' facilities; the open set is unchanged.
	swapMove
)

// move is a candidate neighborhood step. It lives for one
// evaluation/application cycle and is never persisted.
//
// Relocate: customer1 moves from fac1 to fac2 (customer2 unused).
// Swap: customer1 at fac1 and customer2 at fac2 exchange facilities.
type move struct {
	kind      moveKind
	customer1 int
	customer2 int
	fac1      int
	fac2      int
}

// moveDelta is the full effect of a move on the aggregate fields.
// ok=false marks a degenerate or malformed move; callers must treat it as
// non-admissible rather than raising an error.
type moveDelta struct {
	ok          bool
	assignDelta float64
	fixedDelta  float64
	violDelta   float64
	openFac     int // facility being opened by the move, or -1
	closeFac    int // facility being closed by the move, or -1
}

// deltaViolation returns the change in one facility's excess when its load
// moves from loadOld to loadNew under capacity cap:
// max(loadNew−cap, 0) − max(loadOld−cap, 0).
//
// Complexity: O(1).
func deltaViolation(loadOld, loadNew, cap float64) float64 {
	var before, after float64
	if d := loadOld - cap; d > 0 {
		before = d
	}
	if d := loadNew - cap; d > 0 {
		after = d
	}

	return after - before
}

// computeDelta derives the complete effect of mv on st without mutating
// anything. Violation deltas touch only the at-most-two facilities involved;
// unaffected facilities contribute zero and are never read - this locality
// keeps evaluation O(1) rather than O(m).
//
// Complexity: O(1).
func computeDelta(st *state, mv move) moveDelta {
	d := moveDelta{openFac: -1, closeFac: -1}

	var (
		n = st.inst.N()
		m = st.inst.M()
	)

	switch mv.kind {
	case relocateMove:
		var (
			j = mv.customer1
			k = mv.fac1
			l = mv.fac2
		)
		// Degenerate: bad indices, stale origin, or a no-op relocation.
		if j < 0 || j >= n || l < 0 || l >= m || k == l || st.assignment[j] != k {
			return d
		}

		demand := st.inst.Demand(j)

		d.assignDelta = st.inst.Cost(l, j) - st.inst.Cost(k, j)

		// Fixed-cost delta is transactional with open-set membership:
		// moving into an empty facility opens it; moving the last customer
		// out of a facility closes it.
		if st.count[l] == 0 {
			d.fixedDelta += st.inst.FixedCost(l)
			d.openFac = l
		}
		if st.count[k] == 1 {
			d.fixedDelta -= st.inst.FixedCost(k)
			d.closeFac = k
		}

		d.violDelta = deltaViolation(st.load[k], st.load[k]-demand, st.inst.Capacity(k)) +
			deltaViolation(st.load[l], st.load[l]+demand, st.inst.Capacity(l))
		d.ok = true

		return d

	case swapMove:
		var (
			j1 = mv.customer1
			j2 = mv.customer2
			k  = mv.fac1
			l  = mv.fac2
		)
		if j1 < 0 || j1 >= n || j2 < 0 || j2 >= n || j1 == j2 || k == l ||
			st.assignment[j1] != k || st.assignment[j2] != l {
			return d
		}

		var (
			d1 = st.inst.Demand(j1)
			d2 = st.inst.Demand(j2)
		)

		d.assignDelta = (st.inst.Cost(l, j1) - st.inst.Cost(k, j1)) +
			(st.inst.Cost(k, j2) - st.inst.Cost(l, j2))

		// Both facilities keep at least one customer; the open set and
		// fixed cost never change under a swap.
		d.violDelta = deltaViolation(st.load[k], st.load[k]-d1+d2, st.inst.Capacity(k)) +
			deltaViolation(st.load[l], st.load[l]-d2+d1, st.inst.Capacity(l))
		d.ok = true

		return d
	}

	return d
}

// evaluateMove is the pure evaluator: (state, move) → (new objective,
// new feasibility, objective delta) without mutation. A degenerate move
// yields (+Inf, false, +Inf), the sentinel "infinitely bad" result.
//
// Complexity: O(1).
func evaluateMove(st *state, mv move, penalty float64) (newObj float64, feasible bool, delta float64) {
	d := computeDelta(st, mv)
	if !d.ok {
		return math.Inf(1), false, math.Inf(1)
	}

	newViolation := st.violation + d.violDelta
	newObj = (st.fixedCost + d.fixedDelta) + (st.assignCost + d.assignDelta) + penalty*newViolation

	return newObj, newViolation == 0, newObj - st.objective
}

// applyMove mutates st destructively using exactly the deltas computeDelta
// produced, then refreshes the sparse violations entries for the at-most-two
// touched facilities and the objective under the given penalty weight.
// Returns false (no mutation) for a degenerate move.
//
// Complexity: O(1) for aggregates plus O(m) worst case for sorted
// open-list upkeep.
func applyMove(st *state, mv move, penalty float64) bool {
	d := computeDelta(st, mv)
	if !d.ok {
		return false
	}

	st.assignCost += d.assignDelta
	st.fixedCost += d.fixedDelta
	st.violation += d.violDelta

	switch mv.kind {
	case relocateMove:
		var (
			j      = mv.customer1
			k      = mv.fac1
			l      = mv.fac2
			demand = st.inst.Demand(j)
		)
		if d.openFac >= 0 {
			st.openFacility(d.openFac)
		}
		st.assignment[j] = l
		st.count[k]--
		st.count[l]++
		st.load[k] -= demand
		st.load[l] += demand
		if d.closeFac >= 0 {
			st.closeFacility(d.closeFac)
		}
		st.refreshViolations(k, l)

	case swapMove:
		var (
			j1 = mv.customer1
			j2 = mv.customer2
			k  = mv.fac1
			l  = mv.fac2
			d1 = st.inst.Demand(j1)
			d2 = st.inst.Demand(j2)
		)
		st.assignment[j1], st.assignment[j2] = l, k
		st.load[k] += d2 - d1
		st.load[l] += d1 - d2
		st.refreshViolations(k, l)
	}

	st.refreshObjective(penalty)

	return true
}
