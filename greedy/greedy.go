package greedy

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlflp/sscflp"
)

// Construct runs the greedy construction heuristic and returns an initial
// solution for inst.
//
// Contracts:
//   - inst must be non-nil (ErrNilInstance otherwise).
//   - The returned Solution always assigns every customer to an open
//     facility; OpenFacilities is sorted ascending.
//   - IsFeasible/CapacityViolations reflect the constructed loads; an
//     infeasible construction is a valid return, not an error.
//
// Complexity: O(m log m + n·m).
func Construct(inst *sscflp.Instance) (sscflp.Solution, error) {
	if inst == nil {
		return sscflp.Solution{}, sscflp.ErrNilInstance
	}

	var (
		m = inst.M()
		n = inst.N()
	)

	// Stage 1 - rank facilities by fixed cost per unit capacity.
	// Zero capacity ⇒ +Inf ratio: such facilities provide no service and are
	// opened only if everything else is exhausted.
	order := make([]int, m)

	var i int
	for i = 0; i < m; i++ {
		order[i] = i
	}
	ratio := func(i int) float64 {
		if inst.Capacity(i) == 0 {
			return math.Inf(1)
		}

		return inst.FixedCost(i) / inst.Capacity(i)
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := ratio(order[a]), ratio(order[b])
		if ra != rb {
			return ra < rb
		}

		return order[a] < order[b] // deterministic tie-break
	})

	// Stage 2 - open facilities until capacity covers total demand.
	var (
		open       []int
		capOpened  float64
		demand     = inst.TotalDemand()
		facilityID int
	)
	for _, facilityID = range order {
		if capOpened >= demand && len(open) > 0 {
			break
		}
		open = append(open, facilityID)
		capOpened += inst.Capacity(facilityID)
	}
	sort.Ints(open)

	// Stage 3 - assign each customer to the cheapest open facility.
	var (
		assignments = make([]int, n)
		load        = make([]float64, m)
		assignCost  float64
		j           int
		best        int
		bestCost    float64
		c           float64
	)
	for j = 0; j < n; j++ {
		best = open[0]
		bestCost = inst.Cost(best, j)
		for _, facilityID = range open[1:] {
			c = inst.Cost(facilityID, j)
			if c < bestCost {
				best, bestCost = facilityID, c
			}
		}
		assignments[j] = best
		load[best] += inst.Demand(j)
		assignCost += bestCost
	}

	// Stage 4 - totals, feasibility, violations.
	var fixedCost float64
	for _, facilityID = range open {
		fixedCost += inst.FixedCost(facilityID)
	}

	violations := make(map[int]float64)
	for _, facilityID = range open {
		if excess := load[facilityID] - inst.Capacity(facilityID); excess > 0 {
			violations[facilityID] = excess
		}
	}

	sol := sscflp.Solution{
		OpenFacilities:      open,
		Assignments:         assignments,
		TotalFixedCost:      fixedCost,
		TotalAssignmentCost: assignCost,
		TotalCost:           fixedCost + assignCost,
		Objective:           fixedCost + assignCost,
		IsFeasible:          len(violations) == 0,
		CapacityViolations:  violations,
	}

	return sol, nil
}
