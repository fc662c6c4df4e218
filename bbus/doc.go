// Package bbus assembles bus-susceptance (B) matrices: the weighted graph
// Laplacian that both linear solvers factorize or constrain against.
//
// What:
//
//   - Build turns a validated grid.Network into an N×N symmetric matrix:
//     for every line, a susceptance b = scale/x is added to both diagonal
//     entries and subtracted from both off-diagonal entries.
//   - Scale makes the single difference between the two solver conventions
//     explicit: VoltageBase(v) = v² for physical-unit DC flow, BaseMVA(s)
//     for the per-unit LOPF formulation. One builder serves both.
//   - LineSusceptance exposes the exact per-line b used during assembly so
//     flow recovery can never drift from the matrix.
//
// Why:
//
//   - The B matrix is the shared heart of DC power flow and LOPF; building
//     it in one place keeps the Laplacian invariants (symmetry, zero row
//     sums, additive parallel circuits) testable once.
//
// Guarantees:
//
//   - Pure function: the network is never mutated, the result is freshly
//     allocated, repeated calls yield equal matrices.
//   - Line declaration order does not affect the result.
//
// Complexity:
//
//   - Build: O(N² + L) time (dense allocation dominates), O(N²) memory.
//
// Errors:
//
//   - ErrNilNetwork: Build received a nil model.
//   - ErrScale: non-positive scale.
//   - ErrReactance: non-positive line reactance, reachable through direct
//     LineSusceptance calls with hand-built lines.
package bbus
