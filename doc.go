// Package lvlgrid is your in-memory workbench for steady-state power-grid
// analysis — build a validated network once, then solve it linearly: DC
// power flow and linear optimal power flow over the same model.
//
// 🚀 What is lvlgrid?
//
//	A compact library that brings together:
//		• Network model: buses, lines, generators, loads — validated once, immutable after
//		• Susceptance matrices: scale-aware weighted-Laplacian assembly (bbus)
//		• DC power flow: reduce, factorize, recover per-line flows (dcflow)
//		• Linear OPF: cost-minimal dispatch under capacity and thermal limits (lopf)
//		• LP backends: pure-Go simplex by default, HiGHS when you need speed
//		• AC boundary: per-unit case export / solution import for external engines (acpf)
//		• Synthetic grids: deterministic generators for benchmarks and property tests (gridgen)
//
// ✨ Why choose lvlgrid?
//
//   - Fail-fast models – every structural mistake is caught at construction, not mid-solve
//   - Honest results – non-convergence is a status you can branch on, never fabricated numbers
//   - Deterministic – same network, same options, same answer, every time
//   - Small API – two solvers, one model, no framework
//
// Package map:
//
//	grid/       — network model, validation, reference-bus rule, connectivity
//	bbus/       — susceptance (B) matrix builder with explicit scaling
//	dcflow/     — DC power-flow solver
//	lopf/       — linear optimal power flow + LP backend abstraction
//	lopf/highs/ — HiGHS-backed LP backend (cgo, linux/darwin amd64/arm64)
//	acpf/       — per-unit exchange schema for nonlinear AC engines
//	gridgen/    — seeded synthetic networks
//	cmd/gridbench — timing harness over increasing network sizes
//
// Quick ASCII example:
//
//	    G1                    G1 feeds loads on buses 2 and 3;
//	    (1)───x=0.1───(2) L2  dcflow tells you the angles and
//	      \            /      line flows, lopf tells you the
//	     x=0.1     x=0.1      cheapest feasible dispatch.
//	        \      /
//	         (3) L3
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
