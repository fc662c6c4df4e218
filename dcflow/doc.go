// Package dcflow solves the DC (linearized) power-flow problem:
// given a validated network and a susceptance scale, compute bus voltage
// angles and per-line active-power flows.
//
// What:
//
//   - Solve assembles B = bbus.Build(net, scale), fixes the reference angle
//     to zero, eliminates the reference row/column, solves the reduced
//     linear system B'·θ' = P' by dense LU, and recovers each line flow as
//     (θ_from − θ_to)·b.
//   - The injection vector is generation-minus-load per bus; any system
//     imbalance is absorbed by the reference bus, whose equation is the one
//     eliminated.
//
// Why:
//
//   - DC flow is the workhorse screening tool: linear, deterministic, and
//     fast enough to sweep thousands of cases where a nonlinear AC solve
//     would be overkill.
//
// Guarantees:
//
//   - θ[reference] is exactly zero (assigned, not solved).
//   - Pure: the network is never mutated; repeated solves return equal
//     results.
//   - A disconnected network is reported as a configuration error naming
//     the stranded buses before any matrix work; it never surfaces as an
//     opaque singular-matrix failure.
//
// Complexity:
//
//   - O(N³) time for the dense factorization, O(N²) memory.
//
// Options:
//
//   - Options.Scale: susceptance scale (default bbus.VoltageBase(1)).
//   - Options.Verbose: residual and conditioning diagnostics on stdout;
//     never changes numeric results.
//
// Errors:
//
//   - ErrNilNetwork, ErrScale: invalid arguments.
//   - grid.ErrDisconnected (via *grid.DisconnectedError): stranded buses.
//   - ErrSingular: the reduced system could not be factorized.
package dcflow
