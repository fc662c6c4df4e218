// Package lopf solves the linear optimal power flow problem: choose the
// cheapest feasible generator dispatch for a network, respecting nodal
// power balance, unit capacities, and (optionally) line thermal limits.
//
// What:
//
//   - Solve builds a linear program over bus angles θ and per-unit dispatch
//     g: minimize Σ cost·g subject to B·θ − g = −load at every bus,
//     θ[reference] = 0, 0 ≤ g ≤ PMax, and |b·(θ_from−θ_to)| ≤ capacity for
//     every line when a finite capacity is configured. An infinite capacity
//     (the default) omits line constraints entirely.
//   - The LP runs on a pluggable Backend. The default is a pure-Go gonum
//     simplex; lopf/highs provides a HiGHS-backed drop-in for large cases.
//   - Solver outcomes are data, not exceptions: an infeasible or unbounded
//     model comes back as Result{Converged: false, Status: …} with no
//     numeric payload. A Go error means the solve could not be attempted
//     or the backend broke mechanically.
//
// Why:
//
//   - Dispatch questions ("what does serving this load cost?", "which line
//     limit binds?") are linear programs; keeping the formulation separate
//     from the LP engine lets the same model run on whatever solver the
//     deployment can afford.
//
// Guarantees:
//
//   - Lossless balance at optimum: ΣDispatch = ΣLoad.
//   - Dispatch, flows, and cost are invariant to the BaseMVA chosen; only
//     angle magnitudes rescale.
//   - Pure: the network is never mutated; repeated solves agree.
//
// Options:
//
//   - Options.BaseMVA: per-unit power base (default 100).
//   - Options.LineCapacity: uniform thermal limit, +Inf disables.
//   - Options.Backend: LP engine (default Simplex{}).
//   - Options.Verbose: problem-size and status diagnostics on stdout.
//
// Errors:
//
//   - ErrNilNetwork, ErrBaseMVA, ErrCapacity: invalid arguments.
//   - grid.ErrDisconnected: stranded buses (configuration error).
//   - ErrBadProblem: a malformed Problem handed to a Backend.
package lopf
