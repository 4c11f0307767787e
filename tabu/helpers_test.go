package tabu

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlflp/sscflp"
)

// floatTol is the floating tolerance for incremental-vs-scratch comparisons.
const floatTol = 1e-9

// mustInstance builds a validated instance or fails the test.
func mustInstance(t *testing.T, caps, dems, fixed, costs []float64) *sscflp.Instance {
	t.Helper()
	inst, err := sscflp.NewInstance(caps, dems, fixed, mat.NewDense(len(caps), len(dems), costs))
	require.NoError(t, err)

	return inst
}

// referenceInstance is the 2-facility / 3-customer scenario used throughout:
// capacities [10,10], fixed [50,60], demands [4,4,4],
// costs facility0=[1,2,9], facility1=[9,2,1].
func referenceInstance(t *testing.T) *sscflp.Instance {
	t.Helper()

	return mustInstance(t,
		[]float64{10, 10},
		[]float64{4, 4, 4},
		[]float64{50, 60},
		[]float64{
			1, 2, 9,
			9, 2, 1,
		},
	)
}

// mustState builds a state or fails the test.
func mustState(t *testing.T, inst *sscflp.Instance, sol sscflp.Solution, penalty float64) *state {
	t.Helper()
	st, err := newState(inst, sol, penalty)
	require.NoError(t, err)

	return st
}

// scratchAggregates recomputes fixed cost, assignment cost, and total
// violation from first principles, independently of the incremental fields.
func scratchAggregates(st *state) (fixed, assign, violation float64) {
	var (
		inst = st.inst
		i    int
		j    int
	)
	for _, i = range st.openList {
		fixed += inst.FixedCost(i)
	}

	load := make([]float64, inst.M())
	for j = 0; j < inst.N(); j++ {
		i = st.assignment[j]
		assign += inst.Cost(i, j)
		load[i] += inst.Demand(j)
	}
	for i = 0; i < inst.M(); i++ {
		if excess := load[i] - inst.Capacity(i); excess > 0 {
			violation += excess
		}
	}

	return fixed, assign, violation
}

// requireConsistent asserts that every incrementally maintained aggregate of
// st matches a from-scratch recomputation under the given penalty weight.
func requireConsistent(t *testing.T, st *state, penalty float64) {
	t.Helper()

	fixed, assign, violation := scratchAggregates(st)
	require.InDelta(t, fixed, st.fixedCost, floatTol, "fixed cost")
	require.InDelta(t, assign, st.assignCost, floatTol, "assignment cost")
	require.InDelta(t, violation, st.violation, floatTol, "total violation")
	require.InDelta(t, fixed+assign+penalty*violation, st.objective, floatTol, "objective")

	// Open set ⊇ facilities in use; openList sorted and mirrors openFlag.
	var (
		i    int
		prev = -1
	)
	for _, i = range st.openList {
		require.True(t, st.openFlag[i], "openList entry %d not flagged", i)
		require.Greater(t, i, prev, "openList not sorted")
		prev = i
	}
	for i = 0; i < st.inst.M(); i++ {
		if st.count[i] > 0 {
			require.True(t, st.openFlag[i], "facility %d in use but closed", i)
		}
	}

	// Sparse violations map holds exactly the over-capacity facilities.
	for i = 0; i < st.inst.M(); i++ {
		excess := st.load[i] - st.inst.Capacity(i)
		if excess > 0 {
			require.InDelta(t, excess, st.violations[i], floatTol, "violations[%d]", i)
		} else {
			_, present := st.violations[i]
			require.False(t, present, "violations[%d] should be absent", i)
		}
	}
}
