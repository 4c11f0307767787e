// Package sscflp defines the fundamental data model of the Single-Source
// Capacitated Facility Location Problem and the solution records exchanged
// between construction heuristics, the tabu-search engine, and callers.
//
// Model:
//
//	m facilities, each with a capacity b_i ≥ 0 and a fixed opening cost f_i ≥ 0;
//	n customers, each with a demand d_j ≥ 0;
//	an m×n assignment-cost matrix c_{ij} (real-valued, modeled as cost).
//
// Each customer must be wholly served by exactly one open facility
// (single-source constraint). A solution is a set of open facilities plus a
// customer→facility assignment; it is feasible when every facility's load
// (sum of assigned demand) stays within its capacity.
//
// Design principles:
//   - Instance is immutable after construction: inputs are defensively
//     copied, accessors never expose internal slices for mutation.
//   - Strict sentinels: invalid shapes or values are rejected at
//     construction with errors from types.go; no panics on user input.
//   - Solution is a plain value record: safe to clone, compare, and pass
//     between collaborators; infeasibility is data, never an error.
//
// Complexity:
//
//	– NewInstance: O(m·n) validation scan.
//	– Solution helpers (Clone/Gap/Utilization): O(m+n).
package sscflp
