// Package lvlflp is an in-memory toolkit for the Single-Source Capacitated
// Facility Location Problem (SSCFLP): deciding which facilities to open and
// which single facility serves each customer, at minimum fixed plus
// assignment cost, under hard capacity limits.
//
// 🚀 What is lvlflp?
//
//	A deterministic, pure-Go optimization library that brings together:
//		• Problem modeling: immutable instances with strict validation
//		• Greedy construction: one-shot sort-and-assign initial solutions
//		• Iterated tabu search: sampled neighborhoods, delta evaluation,
//		  adaptive infeasibility penalty, perturbation, aspiration
//		• Post-optimization: greedy facility-drop refinement
//
// ✨ Why choose lvlflp?
//
//   - Reproducible – one seeded RNG per run; identical seed ⇒ identical result
//   - Rock-solid guarantees – strict sentinel errors, invariant-preserving
//     incremental state, no panics on user input
//   - Pure Go – no cgo, no services, no hidden I/O
//   - Extensible – pluggable tabu tenure policies, per-iteration hooks,
//     cooperative time limits and interrupts
//
// Under the hood, everything is organized under three subpackages:
//
//	sscflp/ — fundamental Instance and Solution records + validation
//	greedy/ — construction heuristic producing an initial Solution
//	tabu/   — the iterated tabu-search engine and drop refiner
//
// Quick ASCII example:
//
//	    F0 ─── c0
//	     │  ╲
//	    c1   c2 ─── F1
//
//	two facilities, three customers; each customer is served by exactly
//	one open facility, and each facility carries a load ≤ its capacity.
//
// The engine is a metaheuristic: it returns reproducible, well-formed
// solutions, not proven optima. Infeasible outcomes are reported through
// the Solution record, never as errors.
//
//	go get github.com/katalvlaran/lvlflp
package lvlflp
