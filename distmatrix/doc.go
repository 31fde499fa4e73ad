// Package distmatrix provides a validated, dense, row-major representation
// of the symmetric distance matrix consumed by the cvrp solver.
//
// It is a direct descendant of a general-purpose dense-matrix package,
// narrowed to the one contract the CVRP core actually needs: a square,
// non-negative, zero-diagonal matrix of travel costs between the depot
// (index 0) and n customers (indices 1..n), with optional symmetry
// enforcement and optional metric closure (Floyd–Warshall) for instances
// that only specify a partial edge set.
//
// Design goals mirror the matrix package this was adapted from:
//   - Fail-fast validation, strict sentinel errors, no panics on bad input.
//   - Cache-friendly flat storage; O(1) At. A Matrix is not modified after New.
//   - Deterministic: no hidden state, no randomness.
package distmatrix
