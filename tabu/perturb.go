// Package tabu - structural perturbation operators.
//
// Perturbation escapes stagnation by rewriting the open-facility set and
// reassigning customers. It always operates on an independent clone of the
// live state, and it intentionally bypasses the delta machinery: an open-set
// change invalidates too much state to patch incrementally, so after any
// operator that mutates the open set, every customer is reassigned from
// scratch to its cheapest currently-open facility and the aggregates are
// rebuilt (full O(n·m) recompute).
package tabu

import "math/rand"

// maxDiversifySamples caps the combination sampling of the open-1/close-2
// operator.
const maxDiversifySamples = 50

// perturb returns a perturbed independent copy of st.
//
// Selection policy: below the stagnation threshold the operator is drawn
// uniformly among {close-one, open-one, swap-one, shuffle, close-half};
// at or above the threshold the open-1/close-2 operator is forced,
// biasing the escape toward shedding fixed cost.
// An inapplicable operator falls back to close-one; if that cannot apply
// either, the untouched clone is returned.
//
// Complexity: O(n·m) dominated by the reassignment recompute.
func perturb(st *state, stagnation, threshold int, penalty float64, rng *rand.Rand) *state {
	next := st.clone()

	if stagnation >= threshold {
		if !opOpenOneCloseTwo(next, rng) && !opCloseOne(next, rng) {
			return next
		}
		next.reassignCheapest(penalty)

		return next
	}

	var mutated bool
	switch rng.Intn(5) {
	case 0:
		mutated = opCloseOne(next, rng)
	case 1:
		mutated = opOpenOne(next, rng)
	case 2:
		mutated = opSwapOneForOne(next, rng)
	case 3:
		// Shuffle keeps the open set and rebuilds its own aggregates;
		// no cheapest-open reassignment afterwards.
		opShuffle(next, penalty, rng)

		return next
	case 4:
		mutated = opCloseHalf(next, rng)
	}

	if !mutated && !opCloseOne(next, rng) {
		return next
	}
	next.reassignCheapest(penalty)

	return next
}

// closedFacilities lists the currently closed facility indices, ascending.
func closedFacilities(st *state) []int {
	var (
		out []int
		i   int
	)
	for i = 0; i < st.inst.M(); i++ {
		if !st.openFlag[i] {
			out = append(out, i)
		}
	}

	return out
}

// opCloseOne closes one random open facility. Requires >1 open.
func opCloseOne(st *state, rng *rand.Rand) bool {
	if len(st.openList) <= 1 {
		return false
	}
	st.closeFacility(st.openList[rng.Intn(len(st.openList))])

	return true
}

// opOpenOne opens one random closed facility.
func opOpenOne(st *state, rng *rand.Rand) bool {
	closed := closedFacilities(st)
	if len(closed) == 0 {
		return false
	}
	st.openFacility(closed[rng.Intn(len(closed))])

	return true
}

// opSwapOneForOne closes one random open facility and opens one random
// closed facility; the open-set size is preserved.
func opSwapOneForOne(st *state, rng *rand.Rand) bool {
	closed := closedFacilities(st)
	if len(closed) == 0 || len(st.openList) == 0 {
		return false
	}

	victim := st.openList[rng.Intn(len(st.openList))]
	st.closeFacility(victim)
	st.openFacility(closed[rng.Intn(len(closed))])

	return true
}

// opShuffle keeps the open set and reassigns every customer to a uniformly
// random open facility, then rebuilds all aggregates from the assignment.
func opShuffle(st *state, penalty float64, rng *rand.Rand) {
	if len(st.openList) == 0 {
		return
	}

	var j int
	for j = 0; j < st.inst.N(); j++ {
		st.assignment[j] = st.openList[rng.Intn(len(st.openList))]
	}
	st.rebuildFromAssignment(penalty)
}

// opCloseHalf closes a random half of the open facilities (rounded down,
// at least 1), always leaving at least one open.
func opCloseHalf(st *state, rng *rand.Rand) bool {
	o := len(st.openList)
	if o <= 1 {
		return false
	}

	k := o / 2
	if k < 1 {
		k = 1
	}
	if k > o-1 {
		k = o - 1
	}

	// Pick the victims before closing: closeFacility mutates openList.
	var (
		picks   = sampleWithoutReplacement(o, k, rng)
		victims = make([]int, k)
		i       int
	)
	for i = 0; i < k; i++ {
		victims[i] = st.openList[picks[i]]
	}
	for _, v := range victims {
		st.closeFacility(v)
	}

	return true
}

// opCloseOneOpenTwo closes one random open facility and opens up to two
// random closed ones, diversifying toward more facilities.
func opCloseOneOpenTwo(st *state, rng *rand.Rand) bool {
	if len(st.openList) <= 1 {
		return false
	}
	closed := closedFacilities(st)

	st.closeFacility(st.openList[rng.Intn(len(st.openList))])

	k := 2
	if len(closed) < k {
		k = len(closed)
	}
	if k > 0 {
		picks := sampleWithoutReplacement(len(closed), k, rng)
		for _, p := range picks {
			st.openFacility(closed[p])
		}
	}

	return true
}

// opOpenOneCloseTwo opens one closed facility and closes two open ones,
// intensifying toward fewer, typically higher-value facilities. Candidate
// combinations are sampled and ranked by fixed-cost delta
// fixed[c] − (fixed[a] + fixed[b]); the cheapest combination wins.
// Requires at least two open and one closed facility.
func opOpenOneCloseTwo(st *state, rng *rand.Rand) bool {
	closed := closedFacilities(st)
	if len(st.openList) < 2 || len(closed) == 0 {
		return false
	}

	samples := len(closed) * (len(st.openList) - 1)
	if samples > maxDiversifySamples {
		samples = maxDiversifySamples
	}

	var (
		bestDelta    float64
		bestC, bestA int
		bestB        int
		found        bool
		s            int
		c, a, b      int
		idxA, idxB   int
		delta        float64
		inst         = st.inst
		openCount    = len(st.openList)
	)
	for s = 0; s < samples; s++ {
		c = closed[rng.Intn(len(closed))]
		idxA = rng.Intn(openCount)
		idxB = rng.Intn(openCount - 1)
		if idxB >= idxA {
			idxB++
		}
		a, b = st.openList[idxA], st.openList[idxB]

		delta = inst.FixedCost(c) - (inst.FixedCost(a) + inst.FixedCost(b))
		if !found || delta < bestDelta {
			bestDelta = delta
			bestC, bestA, bestB = c, a, b
			found = true
		}
	}
	if !found {
		return false
	}

	st.closeFacility(bestA)
	st.closeFacility(bestB)
	st.openFacility(bestC)

	return true
}
