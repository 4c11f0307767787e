package tabu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlflp/sscflp"
)

func TestGreedyDrop_ClosesExpensiveFacility(t *testing.T) {
	inst := mustInstance(t,
		[]float64{30, 30},
		[]float64{5, 5, 5},
		[]float64{10, 100},
		[]float64{
			1, 1, 1,
			1, 1, 1,
		},
	)
	in := sscflp.Solution{
		OpenFacilities: []int{0, 1},
		Assignments:    []int{0, 0, 1},
	}

	out, err := GreedyDrop(inst, in)
	require.NoError(t, err)

	assert.True(t, out.IsFeasible)
	assert.Equal(t, []int{0}, out.OpenFacilities)
	assert.Equal(t, []int{0, 0, 0}, out.Assignments)
	assert.InDelta(t, 13.0, out.TotalCost, floatTol)
}

// When every closure breaks feasibility, the input passes through unchanged.
func TestGreedyDrop_NoClosureHelps(t *testing.T) {
	inst := mustInstance(t,
		[]float64{10, 10},
		[]float64{8, 8},
		[]float64{5, 5},
		[]float64{
			1, 4,
			4, 1,
		},
	)
	in := sscflp.Solution{
		OpenFacilities: []int{0, 1},
		Assignments:    []int{0, 1},
	}

	out, err := GreedyDrop(inst, in)
	require.NoError(t, err)

	assert.Equal(t, in.OpenFacilities, out.OpenFacilities)
	assert.Equal(t, in.Assignments, out.Assignments)
	assert.InDelta(t, 12.0, out.TotalCost, floatTol)
	assert.True(t, out.IsFeasible)
}

// Several dominated facilities are shed one by one, the ordering restarting
// after each accepted closure.
func TestGreedyDrop_CascadingClosures(t *testing.T) {
	inst := mustInstance(t,
		[]float64{40, 40, 40, 40},
		[]float64{5, 5, 5, 5, 5, 5},
		[]float64{10, 50, 60, 70},
		[]float64{
			1, 1, 1, 1, 1, 1,
			2, 2, 2, 2, 2, 2,
			2, 2, 2, 2, 2, 2,
			2, 2, 2, 2, 2, 2,
		},
	)
	in := sscflp.Solution{
		OpenFacilities: []int{0, 1, 2, 3},
		Assignments:    []int{0, 1, 2, 3, 0, 1},
	}

	out, err := GreedyDrop(inst, in)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, out.OpenFacilities)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, out.Assignments)
	assert.InDelta(t, 16.0, out.TotalCost, floatTol)
}

// The refiner never increases the objective of a feasible input.
func TestGreedyDrop_Monotonic(t *testing.T) {
	inst := wideInstance(t)
	in := sscflp.Solution{
		OpenFacilities: []int{0, 1, 2, 3},
		Assignments:    []int{0, 1, 2, 3, 0, 1},
	}
	stIn := mustState(t, inst, in, dropPenalty)

	out, err := GreedyDrop(inst, in)
	require.NoError(t, err)

	assert.True(t, out.IsFeasible)
	assert.LessOrEqual(t, out.TotalCost, stIn.objective+floatTol)
}

func TestGreedyDrop_InputErrors(t *testing.T) {
	inst := referenceInstance(t)

	_, err := GreedyDrop(nil, sscflp.Solution{})
	assert.ErrorIs(t, err, ErrNilInstance)

	_, err = GreedyDrop(inst, sscflp.Solution{Assignments: []int{0, 0, 5}})
	assert.ErrorIs(t, err, sscflp.ErrFacilityOutOfRange)

	_, err = GreedyDrop(inst, sscflp.Solution{
		OpenFacilities: []int{9},
		Assignments:    []int{0, 0, 0},
	})
	assert.ErrorIs(t, err, sscflp.ErrFacilityOutOfRange)
}
