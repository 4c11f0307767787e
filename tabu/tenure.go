// Package tabu - tabu memory and pluggable tenure policies.
package tabu

import (
	"math"
	"math/rand"
)

// tabuKey identifies a (customer, facility) pair. Bans are keyed by the
// facility a customer departs from; frequency counters are keyed by the
// destination facility.
type tabuKey struct {
	customer int
	facility int
}

// tabuMemory tracks forbidden (customer, facility) re-entries with
// expiring tenure: a key is banned at iteration t while t < expiry.
type tabuMemory struct {
	expiry map[tabuKey]int
}

func newTabuMemory() tabuMemory {
	return tabuMemory{expiry: make(map[tabuKey]int)}
}

// isTabu reports whether mv is forbidden at the given iteration.
// For a Relocate only the departure key (customer, from) is checked; for a
// Swap both participants' departure keys are checked and either ban makes
// the whole swap tabu.
//
// Complexity: O(1).
func (t tabuMemory) isTabu(mv move, iteration int) bool {
	switch mv.kind {
	case relocateMove:
		return iteration < t.expiry[tabuKey{mv.customer1, mv.fac1}]
	case swapMove:
		return iteration < t.expiry[tabuKey{mv.customer1, mv.fac1}] ||
			iteration < t.expiry[tabuKey{mv.customer2, mv.fac2}]
	}

	return false
}

// ban forbids (customer, facility) re-entry until iteration+tenure.
func (t tabuMemory) ban(customer, facility, iteration, tenure int) {
	t.expiry[tabuKey{customer, facility}] = iteration + tenure
}

// TenurePolicy assigns a tabu tenure for a customer moving to a destination
// facility. Tenure is called once per vacated key of an accepted move (twice
// for a Swap), with the destination facility of that participant; stateful
// implementations may record the call as a usage of that destination key.
//
// The rng argument is the run's single seeded generator; implementations
// drawing randomness must use it and nothing else to preserve determinism.
type TenurePolicy interface {
	Tenure(customer, facility int, rng *rand.Rand) int
}

// UniformTenure draws tenures uniformly from [Min, Max]. It is the default
// policy, stateless and safe to reuse across runs.
type UniformTenure struct {
	Min int
	Max int
}

// Tenure returns a uniform draw from [Min, Max] (at least 1).
func (u UniformTenure) Tenure(_, _ int, rng *rand.Rand) int {
	if u.Max <= u.Min {
		if u.Min < 1 {
			return 1
		}

		return u.Min
	}

	return u.Min + rng.Intn(u.Max-u.Min+1)
}

// FrequencyTenure grows the tenure with how often a destination key has
// been used: θ = base + m·(freq(key)/maxFreq), rewarding exploration away
// from over-used moves. It is stateful; one value should serve one run.
type FrequencyTenure struct {
	base int
	m    int

	freq    map[tabuKey]int
	maxFreq int
}

// DefaultTenureBase is the additive floor of the frequency-adaptive tenure.
const DefaultTenureBase = 7

// NewFrequencyTenure returns a frequency-adaptive policy for an instance
// with m facilities. base < 1 falls back to DefaultTenureBase.
func NewFrequencyTenure(base, m int) *FrequencyTenure {
	if base < 1 {
		base = DefaultTenureBase
	}

	return &FrequencyTenure{
		base: base,
		m:    m,
		freq: make(map[tabuKey]int),
	}
}

// Tenure records a usage of the destination key and returns
// round(base + m·freq/maxFreq), at least 1.
func (f *FrequencyTenure) Tenure(customer, facility int, _ *rand.Rand) int {
	key := tabuKey{customer, facility}
	f.freq[key]++
	if f.freq[key] > f.maxFreq {
		f.maxFreq = f.freq[key]
	}

	u := f.maxFreq
	if u < 1 {
		u = 1
	}
	theta := float64(f.base) + float64(f.m)*float64(f.freq[key])/float64(u)

	tenure := int(math.Round(theta))
	if tenure < 1 {
		tenure = 1
	}

	return tenure
}
