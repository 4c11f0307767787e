// Package tabu - the search loop orchestrating neighborhood generation,
// admissibility filtering, move application, memory updates, best-feasible
// tracking, and perturbation.
package tabu

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvlflp/sscflp"
)

// Search runs iterated tabu search over one SSCFLP instance.
//
// A Search is single-threaded: one live solution state is exclusively owned
// and mutated by one Run at a time. Run re-seeds the RNG and resets the tabu
// memory and penalty weight, so repeated Run calls with identical inputs
// produce identical results.
type Search struct {
	inst *sscflp.Instance
	opts Options
}

// NewSearch validates opts and binds the engine to inst.
//
// Errors: ErrNilInstance and the option sentinels from types.go.
func NewSearch(inst *sscflp.Instance, opts Options) (*Search, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &Search{inst: inst, opts: opts}, nil
}

// Run executes the search starting from an externally supplied initial
// solution and returns the best feasible solution found, polished by
// GreedyDrop. If no feasible solution was ever recorded, a snapshot of the
// final (possibly infeasible) state is returned with IsFeasible=false and
// populated CapacityViolations - a valid, documented outcome, not an error.
//
// The supplied lower bound (if any) is passed through unchanged.
//
// Termination: iteration budget exhausted, no candidate or no admissible
// move in an iteration, TimeLimit exceeded, or Interrupt returning true.
//
// Errors (configuration only, at state construction): sentinels from the
// sscflp package when the initial assignment is malformed.
func (s *Search) Run(initial sscflp.Solution) (sscflp.Solution, error) {
	var (
		rng     = rngFromSeed(s.opts.Seed)
		memory  = newTabuMemory()
		penalty = newPenaltyController(s.opts.InitialPenalty, s.opts.PenaltyRate)
		tenure  = s.opts.Tenure
	)
	if tenure == nil {
		tenure = UniformTenure{Min: s.opts.TenureMin, Max: s.opts.TenureMax}
	}

	current, err := newState(s.inst, initial, penalty.weight)
	if err != nil {
		return sscflp.Solution{}, err
	}

	// Best-feasible-so-far is tracked by cloning, never by aliasing.
	var (
		best    *state
		bestObj = math.Inf(1)
	)
	if current.isFeasible() {
		best = current.clone()
		bestObj = current.objective
	}

	var (
		stagnation int
		start      = time.Now()
		it         int
	)
	for it = 0; it < s.opts.MaxIterations; it++ {
		if s.opts.TimeLimit > 0 && time.Since(start) >= s.opts.TimeLimit {
			break
		}
		if s.opts.Interrupt != nil && s.opts.Interrupt() {
			break
		}
		if s.opts.OnIteration != nil {
			s.opts.OnIteration(IterStats{
				Iteration:     it,
				Objective:     current.objective,
				Violation:     current.violation,
				Penalty:       penalty.weight,
				Feasible:      current.isFeasible(),
				OpenCount:     len(current.openList),
				Stagnation:    stagnation,
				BestObjective: bestObj,
				HasBest:       best != nil,
			})
		}

		moves := generateMoves(current, s.opts.SampleFraction, rng)
		if len(moves) == 0 {
			break
		}

		bestMv, found := selectMove(current, moves, memory, it, penalty.weight, bestObj)
		if !found {
			break
		}

		applyMove(current, bestMv, penalty.weight)
		s.recordTabu(memory, tenure, bestMv, it, rng)
		penalty.update(current.isFeasible())
		current.refreshObjective(penalty.weight)

		if current.isFeasible() && current.objective < bestObj {
			best = current.clone()
			bestObj = current.objective
			stagnation = 0
		} else {
			stagnation++
		}

		if stagnation >= s.opts.MaxStagnation {
			current = perturb(current, stagnation, s.opts.MaxStagnation, penalty.weight, rng)
			stagnation = 0
		}
	}

	if best != nil {
		return GreedyDrop(s.inst, best.toSolution())
	}

	return current.toSolution(), nil
}

// selectMove returns the admissible candidate with the lowest resulting
// objective. Ties break by the shuffled candidate order (strict < keeps the
// first minimum). The criterion is the raw resulting objective regardless
// of its feasibility: the engine may knowingly step into a worse but
// admissible infeasible state - intentional strategic oscillation.
//
// Admissibility: non-tabu, or tabu with aspiration - the move would produce
// a feasible state strictly better than the best feasible on record.
//
// Complexity: O(len(moves)).
func selectMove(st *state, moves []move, memory tabuMemory, iteration int, penalty, bestObj float64) (move, bool) {
	var (
		bestMv    move
		bestMvObj = math.Inf(1)
		found     bool
		mv        move
	)
	for _, mv = range moves {
		newObj, feasible, _ := evaluateMove(st, mv, penalty)

		if memory.isTabu(mv, iteration) && !(feasible && newObj < bestObj) {
			continue
		}
		if newObj < bestMvObj {
			bestMv, bestMvObj = mv, newObj
			found = true
		}
	}

	return bestMv, found
}

// recordTabu bans the vacated (customer, old facility) keys of an applied
// move, with tenures drawn from the policy keyed by each participant's
// destination facility.
func (s *Search) recordTabu(memory tabuMemory, tenure TenurePolicy, mv move, iteration int, rng *rand.Rand) {
	switch mv.kind {
	case relocateMove:
		memory.ban(mv.customer1, mv.fac1, iteration, tenure.Tenure(mv.customer1, mv.fac2, rng))
	case swapMove:
		memory.ban(mv.customer1, mv.fac1, iteration, tenure.Tenure(mv.customer1, mv.fac2, rng))
		memory.ban(mv.customer2, mv.fac2, iteration, tenure.Tenure(mv.customer2, mv.fac1, rng))
	}
}
