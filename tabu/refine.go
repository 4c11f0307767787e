// Package tabu - greedy facility-drop refinement.
package tabu

import (
	"sort"

	"github.com/katalvlaran/lvlflp/sscflp"
)

// dropPenalty is the penalty weight under which trial states are scored.
// Only feasible trials (zero violation) are ever accepted, so the weight
// never influences an accepted objective; any positive constant works.
const dropPenalty = 1.0

// GreedyDrop post-processes a feasible solution by trial-closing facilities.
//
// Repeatedly: order the open facilities by descending fixed cost; for each,
// in that order, tentatively close it, reassign every customer to its
// cheapest remaining open facility (full recompute), and accept the closure
// if the result stays feasible and strictly reduces the objective. An
// accepted closure restarts the candidate ordering from the updated state.
// The process stops when no candidate closure helps or only one facility
// remains open.
//
// Monotonic: the output objective never exceeds the input's, and an input's
// feasibility is never lost. Terminates in at most (open facilities) rounds.
//
// Errors: only input-shape sentinels from the sscflp package (nil instance,
// assignment referencing an invalid facility).
//
// Complexity: O(m² · n·m) worst case; typically far less.
func GreedyDrop(inst *sscflp.Instance, sol sscflp.Solution) (sscflp.Solution, error) {
	if inst == nil {
		return sscflp.Solution{}, ErrNilInstance
	}

	st, err := newState(inst, sol, dropPenalty)
	if err != nil {
		return sscflp.Solution{}, err
	}

	for len(st.openList) > 1 {
		// Candidates ordered by descending fixed cost, index ascending on
		// ties for determinism.
		cands := append([]int(nil), st.openList...)
		sort.SliceStable(cands, func(a, b int) bool {
			fa, fb := inst.FixedCost(cands[a]), inst.FixedCost(cands[b])
			if fa != fb {
				return fa > fb
			}

			return cands[a] < cands[b]
		})

		var (
			improved bool
			f        int
		)
		for _, f = range cands {
			trial := st.clone()
			trial.closeFacility(f)
			trial.reassignCheapest(dropPenalty)

			if trial.isFeasible() && trial.objective < st.objective {
				st = trial
				improved = true

				break // restart the ordering from the updated state
			}
		}
		if !improved {
			break
		}
	}

	return st.toSolution(), nil
}
