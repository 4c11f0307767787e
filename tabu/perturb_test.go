package tabu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlflp/sscflp"
)

// wideInstance is a 4-facility / 6-customer scenario with room to open and
// close facilities: capacities [20×4], demands [5×6], fixed [10,20,30,40].
func wideInstance(t *testing.T) *sscflp.Instance {
	t.Helper()

	return mustInstance(t,
		[]float64{20, 20, 20, 20},
		[]float64{5, 5, 5, 5, 5, 5},
		[]float64{10, 20, 30, 40},
		[]float64{
			1, 2, 3, 4, 5, 6,
			6, 5, 4, 3, 2, 1,
			2, 2, 2, 2, 2, 2,
			3, 3, 3, 3, 3, 3,
		},
	)
}

// wideState opens facilities 0 and 1 and balances customers across them.
func wideState(t *testing.T, penalty float64) *state {
	t.Helper()

	return mustState(t, wideInstance(t), sscflp.Solution{
		OpenFacilities: []int{0, 1},
		Assignments:    []int{0, 0, 0, 1, 1, 1},
	}, penalty)
}

func TestOpCloseOne(t *testing.T) {
	st := wideState(t, 1.0)
	rng := rand.New(rand.NewSource(1))

	require.True(t, opCloseOne(st, rng))
	assert.Len(t, st.openList, 1)

	// A single open facility refuses to close.
	assert.False(t, opCloseOne(st, rng))
	assert.Len(t, st.openList, 1)
}

func TestOpOpenOne(t *testing.T) {
	st := wideState(t, 1.0)
	rng := rand.New(rand.NewSource(1))

	require.True(t, opOpenOne(st, rng))
	assert.Len(t, st.openList, 3)

	// Nothing left to open once every facility is running.
	for len(st.openList) < st.inst.M() {
		require.True(t, opOpenOne(st, rng))
	}
	assert.False(t, opOpenOne(st, rng))
}

func TestOpSwapOneForOne(t *testing.T) {
	st := wideState(t, 1.0)
	rng := rand.New(rand.NewSource(3))
	before := append([]int(nil), st.openList...)

	require.True(t, opSwapOneForOne(st, rng))
	assert.Len(t, st.openList, len(before), "open-set size preserved")
	assert.NotEqual(t, before, st.openList, "open set actually changed")
}

func TestOpShuffle(t *testing.T) {
	st := wideState(t, 2.0)
	rng := rand.New(rand.NewSource(7))

	opShuffle(st, 2.0, rng)

	for j, f := range st.assignment {
		assert.True(t, st.openFlag[f], "customer %d shuffled to closed facility", j)
	}
	requireConsistent(t, st, 2.0)
}

func TestOpCloseHalf(t *testing.T) {
	inst := wideInstance(t)
	st := mustState(t, inst, sscflp.Solution{
		OpenFacilities: []int{0, 1, 2, 3},
		Assignments:    []int{0, 1, 2, 3, 0, 1},
	}, 1.0)
	rng := rand.New(rand.NewSource(5))

	require.True(t, opCloseHalf(st, rng))
	assert.Len(t, st.openList, 2)

	require.True(t, opCloseHalf(st, rng))
	assert.Len(t, st.openList, 1, "always leaves at least one open")

	assert.False(t, opCloseHalf(st, rng))
}

func TestOpCloseOneOpenTwo(t *testing.T) {
	st := wideState(t, 1.0)
	rng := rand.New(rand.NewSource(11))

	require.True(t, opCloseOneOpenTwo(st, rng))
	assert.Len(t, st.openList, 3, "close 1, open 2")

	// Inapplicable with a single open facility.
	single := mustState(t, wideInstance(t), sscflp.Solution{
		OpenFacilities: []int{0},
		Assignments:    []int{0, 0, 0, 0, 0, 0},
	}, 1.0)
	assert.False(t, opCloseOneOpenTwo(single, rng))
}

// With two open facilities and one closed candidate the sampled combination
// is forced, so the operator deterministically trades both open facilities
// for the closed one.
func TestOpOpenOneCloseTwo_ForcedCombination(t *testing.T) {
	inst := mustInstance(t,
		[]float64{12, 12, 12},
		[]float64{4, 4, 4},
		[]float64{5, 6, 7},
		[]float64{
			1, 2, 3,
			3, 1, 2,
			2, 3, 1,
		},
	)
	st := mustState(t, inst, sscflp.Solution{
		OpenFacilities: []int{0, 1},
		Assignments:    []int{0, 1, 1},
	}, 1.0)
	rng := rand.New(rand.NewSource(1))

	require.True(t, opOpenOneCloseTwo(st, rng))
	assert.Equal(t, []int{2}, st.openList)

	// Inapplicable with fewer than two open or zero closed facilities.
	assert.False(t, opOpenOneCloseTwo(st, rng))
}

// At the stagnation threshold perturb forces the open-1/close-2 operator and
// finishes with a cheapest-open reassignment.
func TestPerturb_ForcedOperatorAtThreshold(t *testing.T) {
	inst := mustInstance(t,
		[]float64{12, 12, 12},
		[]float64{4, 4, 4},
		[]float64{5, 6, 7},
		[]float64{
			1, 2, 3,
			3, 1, 2,
			2, 3, 1,
		},
	)
	st := mustState(t, inst, sscflp.Solution{
		OpenFacilities: []int{0, 1},
		Assignments:    []int{0, 1, 1},
	}, 1.0)
	rng := rand.New(rand.NewSource(1))

	next := perturb(st, 40, 40, 1.0, rng)

	assert.Equal(t, []int{2}, next.openList)
	assert.Equal(t, []int{2, 2, 2}, next.assignment)
	assert.True(t, next.isFeasible())
	requireConsistent(t, next, 1.0)

	// The live state is untouched.
	assert.Equal(t, []int{0, 1}, st.openList)
	assert.Equal(t, []int{0, 1, 1}, st.assignment)
	requireConsistent(t, st, 1.0)
}

// Below the threshold every drawn operator must leave a consistent state
// with at least one open facility, regardless of which branch fires.
func TestPerturb_BelowThresholdStaysConsistent(t *testing.T) {
	var seed int64
	for seed = 1; seed <= 25; seed++ {
		st := wideState(t, 3.0)
		rng := rand.New(rand.NewSource(seed))

		next := perturb(st, 5, 40, 3.0, rng)

		require.NotEmpty(t, next.openList, "seed %d emptied the open set", seed)
		requireConsistent(t, next, 3.0)
		requireConsistent(t, st, 3.0)
		assert.Equal(t, []int{0, 1}, st.openList, "seed %d mutated the input", seed)
	}
}

// A single-facility instance has no applicable structural operator; perturb
// returns a clone equivalent to the input.
func TestPerturb_NothingApplicable(t *testing.T) {
	inst := mustInstance(t,
		[]float64{30},
		[]float64{5, 5, 5},
		[]float64{9},
		[]float64{1, 2, 3},
	)
	st := mustState(t, inst, sscflp.Solution{
		OpenFacilities: []int{0},
		Assignments:    []int{0, 0, 0},
	}, 1.0)

	var seed int64
	for seed = 1; seed <= 10; seed++ {
		next := perturb(st, 0, 40, 1.0, rand.New(rand.NewSource(seed)))

		assert.Equal(t, []int{0}, next.openList)
		assert.Equal(t, []int{0, 0, 0}, next.assignment)
		requireConsistent(t, next, 1.0)
	}
}
