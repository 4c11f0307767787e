// Package tabu implements an iterated tabu search for the Single-Source
// Capacitated Facility Location Problem.
//
// The engine consumes an initial sscflp.Solution from an external
// construction heuristic (see the greedy package) and improves it across a
// bounded number of iterations:
//
//   - One live solution state is maintained incrementally: assignment,
//     per-facility loads and counts, fixed/assignment cost totals, capacity
//     violation, and the penalized objective.
//   - Each iteration samples a fraction of customers and generates Relocate
//     and Swap candidate moves; a single pure delta function scores every
//     candidate without mutating state, and the applier commits exactly the
//     same deltas, so the two paths can never drift.
//   - A tabu memory forbids undoing recent moves for a tenure drawn from a
//     pluggable policy; aspiration overrides the ban when a move would beat
//     the best feasible objective on record.
//   - An adaptive penalty weight converts capacity violation into cost,
//     letting the search oscillate through infeasible territory early and
//     pushing it back toward feasibility as the weight grows.
//   - On stagnation, a suite of structural perturbation operators rewrites
//     the open-facility set and reassigns every customer from scratch.
//   - The best feasible solution is polished by a greedy facility-drop
//     refiner before being returned.
//
// Design principles:
//   - Deterministic: one seeded RNG per run; identical seed and inputs
//     produce bit-identical output records. No time-based randomness.
//   - Strict sentinels: configuration errors only from types.go; degenerate
//     runtime conditions degrade gracefully (an all-closed open set yields
//     an unbounded-violation state, never a panic).
//   - No logging: observability is offered through the optional
//     Options.OnIteration hook, plus cooperative Options.TimeLimit and
//     Options.Interrupt checks between iterations.
//   - Infeasibility is data: exhausting the iteration budget without a
//     feasible solution returns IsFeasible=false with populated
//     CapacityViolations, never an error.
//
// Complexity per iteration, with n customers, m facilities and sample size
// s = ⌈β·n⌉: neighborhood generation O(s·m + s²), evaluation O(1) per
// candidate, application O(m) worst case (sorted open-list upkeep).
// Perturbation performs a full O(n·m) reassignment.
package tabu
