// Package highs plugs the HiGHS solver into lopf as a drop-in Backend.
//
// What (semantics)?
//   - Backend implements lopf.Backend on top of the embedded HiGHS C
//     library (github.com/bartolsthoorn/gohighs): lopf's general-form
//     Problem maps one-to-one onto a HiGHS model, two-sided rows, native
//     column bounds and all, with no standard-form inflation.
//   - Verdict mapping follows the lopf contract: optimal, infeasible and
//     unbounded travel in Solution.Status. The ambiguous
//     "unbounded or infeasible" presolve verdict maps to infeasible,
//     because a dispatch program with boxed generation columns has no
//     unbounded ray once its equality rows hold. Load errors, limits and
//     solver breakdowns become StatusFailed with the HiGHS status text in
//     Message; a Go error from Solve still means mechanical failure only.
//
// Why use it?
//   - Scale: the pure-Go simplex backend pivots on a dense standard form
//     and is comfortable up to a few hundred buses; HiGHS factorizes
//     sparse bases and handles thousands of buses without breaking stride.
//   - Fidelity: both backends receive byte-identical Problems, so swapping
//     them is a one-field change in lopf.Options.
//
// Requirements:
//   - cgo and a supported target: (linux || darwin) && (amd64 || arm64).
//     On other targets this package compiles to documentation only and
//     Backend is not available.
//
// Errors:
//   - lopf.ErrBadProblem — the Problem failed its structural Check;
//   - wrapped gohighs errors — the engine could not load or run the model.
package highs
