// Package greedy builds an initial SSCFLP solution with a one-shot
// sort-and-assign construction heuristic.
//
// Algorithm:
//
//  1. Rank facilities by the efficiency ratio R_i = f_i / b_i
//     (fixed cost per unit of capacity, ascending; zero-capacity
//     facilities rank last).
//  2. Open facilities in rank order until opened capacity ≥ total demand.
//  3. Assign every customer to its cheapest open facility.
//
// The result may be infeasible (cheapest-first assignment can overload a
// facility); that is a documented outcome reported through the Solution
// record, and the tabu engine is the collaborator that repairs it.
//
// Design principles:
//   - Deterministic: no randomness; ties in the ratio sort are broken by
//     facility index.
//   - Side-effect free: the instance is read-only; one Solution is returned.
//   - Strict sentinels: only errors from the sscflp package.
//
// Complexity: O(m log m + n·m) time, O(m+n) space.
package greedy
