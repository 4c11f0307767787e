// Package tabu - sampled neighborhood generation.
package tabu

import (
	"math"
	"math/rand"
)

// sampleSize returns ⌈β·n⌉ clamped to [1, n].
//
// Complexity: O(1).
func sampleSize(beta float64, n int) int {
	k := int(math.Ceil(beta * float64(n)))
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}

	return k
}

// generateMoves samples ⌈β·n⌉ customers without replacement once per
// iteration and produces the combined Relocate+Swap candidate list:
//
//   - one Relocate per sampled customer per other facility
//     (≤ sample × (m−1) candidates);
//   - one Swap per unordered pair of sampled customers whose current
//     facilities differ.
//
// The combined list is shuffled before being returned; the shuffled order
// doubles as the tie-break order during selection (first minimum wins).
//
// Complexity: O(s·m + s²) with s the sample size.
func generateMoves(st *state, beta float64, rng *rand.Rand) []move {
	var (
		n = st.inst.N()
		m = st.inst.M()
		s = sampleSize(beta, n)
	)

	sampled := sampleWithoutReplacement(n, s, rng)

	moves := make([]move, 0, s*(m-1)+s*(s-1)/2)

	// Relocate candidates.
	var (
		j int
		k int
		l int
	)
	for _, j = range sampled {
		k = st.assignment[j]
		for l = 0; l < m; l++ {
			if l == k {
				continue
			}
			moves = append(moves, move{kind: relocateMove, customer1: j, fac1: k, fac2: l})
		}
	}

	// Swap candidates over unordered pairs of the same sample.
	var (
		a  int
		b  int
		j2 int
	)
	for a = 0; a < len(sampled); a++ {
		for b = a + 1; b < len(sampled); b++ {
			j, j2 = sampled[a], sampled[b]
			k, l = st.assignment[j], st.assignment[j2]
			if k == l {
				continue
			}
			moves = append(moves, move{kind: swapMove, customer1: j, customer2: j2, fac1: k, fac2: l})
		}
	}

	shuffleMovesInPlace(moves, rng)

	return moves
}
