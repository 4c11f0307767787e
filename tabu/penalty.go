// Package tabu - adaptive infeasibility penalty.
package tabu

// Penalty weight clamp bounds. The floor prevents underflow to zero (which
// would erase the violation term entirely); the ceiling prevents overflow
// and pathological dominance over the cost terms.
const (
	penaltyFloor = 1e-6
	penaltyCeil  = 1e9
)

// penaltyController adapts the infeasibility weight multiplicatively after
// each applied move: feasible states cheapen the penalty, infeasible states
// raise it. This strategic oscillation lets the search wander through
// infeasible territory early and pushes it back toward feasibility as the
// weight grows; it is a soft mechanism, not a hard constraint.
type penaltyController struct {
	weight float64
	rate   float64 // ε of the (1+ε) multiplicative step
}

func newPenaltyController(initial, rate float64) penaltyController {
	return penaltyController{weight: initial, rate: rate}
}

// update applies one multiplicative step and clamps the weight to
// [penaltyFloor, penaltyCeil].
//
// Complexity: O(1).
func (p *penaltyController) update(feasible bool) {
	factor := 1 + p.rate
	if feasible {
		p.weight /= factor
	} else {
		p.weight *= factor
	}

	if p.weight < penaltyFloor {
		p.weight = penaltyFloor
	}
	if p.weight > penaltyCeil {
		p.weight = penaltyCeil
	}
}
