// Package tabu - RNG utilities for the search engine.
//
// This file centralizes deterministic random generation for sampling,
// shuffling, tenure draws, and perturbation choices.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; helpers are total on their documented inputs.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. One Search owns one *rand.Rand;
//     do not share a Search across goroutines during Run.
package tabu

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// sampleWithoutReplacement returns k distinct values drawn uniformly from
// [0..n-1] via a partial Fisher–Yates pass. The returned order is the draw
// order (itself uniformly random), which downstream generation relies on
// for deterministic tie-breaks.
//
// Contracts: 0 <= k <= n; rng non-nil.
//
// Complexity: O(n) time, O(n) space.
func sampleWithoutReplacement(n, k int, rng *rand.Rand) []int {
	idx := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		idx[i] = i
	}

	var j int
	for i = 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:k:k]
}

// shuffleMovesInPlace performs an in-place Fisher–Yates shuffle of moves.
// Shuffling destroys generation-order bias; the shuffled order is also the
// tie-break order during candidate selection.
//
// Complexity: O(len(moves)) time, O(1) extra space.
func shuffleMovesInPlace(moves []move, rng *rand.Rand) {
	n := len(moves)
	if n <= 1 {
		return
	}

	var (
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		moves[i], moves[j] = moves[j], moves[i]
	}
}
