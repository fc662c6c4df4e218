// SPDX-License-Identifier: MIT
// Package: lvlgrid/lopf
//
// solve.go - LOPF formulation and solution recovery.
//
// Contract:
//   - Variables are x = [θ₁..θ_N, g₁..g_M], generators ordered by bus.
//   - One balance equality per bus, one reference equality, box bounds on
//     dispatch, and ±capacity rows per line only when the capacity is
//     finite. +Inf omits them; it is never encoded as a large bound.
//   - Non-optimal backend verdicts return a Result with Converged=false
//     and empty numeric fields; they are not Go errors.
//   - Pure: the network is never mutated; equal inputs give equal results.

package lopf

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlgrid/bbus"
	"github.com/katalvlaran/lvlgrid/grid"
)

const opSolve = "lopf.Solve"

// Solve finds the cost-minimal feasible dispatch for net.
//
// Steps:
//  1. Validate arguments and options; default the backend.
//  2. Connectivity pre-check: every bus must reach the reference.
//  3. Assemble the LP: balance rows from B = bbus.Build(net, BaseMVA),
//     the θ[reference]=0 row, dispatch bounds, optional line-limit rows.
//  4. Run the backend; mechanical failure becomes a wrapped error.
//  5. Map the verdict: optimal → angles, dense dispatch, flows, cost;
//     anything else → structured non-convergence.
func Solve(net *grid.Network, opts Options) (*Result, error) {
	// 1) Arguments and options.
	if net == nil {
		return nil, fmt.Errorf("%s: %w", opSolve, ErrNilNetwork)
	}
	if opts.BaseMVA <= 0 || math.IsNaN(opts.BaseMVA) || math.IsInf(opts.BaseMVA, 1) {
		return nil, fmt.Errorf("%s: BaseMVA=%g: %w", opSolve, opts.BaseMVA, ErrBaseMVA)
	}
	capacity := opts.LineCapacity
	if capacity <= 0 || math.IsNaN(capacity) {
		return nil, fmt.Errorf("%s: LineCapacity=%g: %w", opSolve, capacity, ErrCapacity)
	}
	backend := opts.Backend
	if backend == nil {
		backend = Simplex{}
	}

	// 2) Structure.
	if err := net.CheckConnected(); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	n := net.N()
	ref := net.Reference()
	gens := net.Generators()
	lines := net.Lines()
	scale := bbus.BaseMVA(opts.BaseMVA)

	// 3) Formulation. Columns: θ occupy [0,n), dispatch occupies [n, n+m).
	b, err := bbus.Build(net, scale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	m := len(gens)
	p := NewProblem(n + m)
	genAt := make([]int, n) // bus index → generator ordinal, -1 when absent
	for i := range genAt {
		genAt[i] = -1
	}
	for j, g := range gens {
		genAt[g.Bus-1] = j
		p.Cost[n+j] = g.Cost
		p.ColLower[n+j] = 0
		p.ColUpper[n+j] = g.PMax
	}

	// Balance rows: Σ_j B[k][j]·θ_j − g_{at k} = −load_k, one per bus.
	load := net.LoadByBus()
	cols := make([]int, 0, n+1)
	vals := make([]float64, 0, n+1)
	for k := 0; k < n; k++ {
		cols = cols[:0]
		vals = vals[:0]
		for j := 0; j < n; j++ {
			if v := b.At(k, j); v != 0 {
				cols = append(cols, j)
				vals = append(vals, v)
			}
		}
		if j := genAt[k]; j >= 0 {
			cols = append(cols, n+j)
			vals = append(vals, -1)
		}
		p.AddRow(-load[k], cols, vals, -load[k])
	}

	// Reference row: θ_ref = 0.
	p.AddRow(0, []int{ref - 1}, []float64{1}, 0)

	// Line limits, only when finite: −cap ≤ b_l·(θ_from − θ_to) ≤ +cap.
	if !math.IsInf(capacity, 1) {
		for i, l := range lines {
			s, lerr := bbus.LineSusceptance(l, scale)
			if lerr != nil {
				return nil, fmt.Errorf("%s: line %d (%d–%d): %w", opSolve, i, l.From, l.To, lerr)
			}
			p.AddRow(-capacity, []int{l.From - 1, l.To - 1}, []float64{s, -s}, capacity)
		}
	}

	if opts.Verbose {
		fmt.Printf("lopf: %d vars (%d angles, %d units), %d rows, capacity=%g\n",
			p.NumCols, n, m, p.NumRows(), capacity)
	}

	// 4) Engine run.
	sol, err := backend.Solve(p)
	if err != nil {
		return nil, fmt.Errorf("%s: backend: %w", opSolve, err)
	}

	// 5) Verdict mapping.
	if sol.Status != StatusOptimal {
		if opts.Verbose {
			fmt.Printf("lopf: not converged: %s %s\n", sol.Status, sol.Message)
		}
		return &Result{Converged: false, Status: sol.Status, Reference: ref}, nil
	}

	angles := make([]float64, n)
	copy(angles, sol.X[:n])
	dispatch := make([]float64, n)
	for j, g := range gens {
		dispatch[g.Bus-1] = sol.X[n+j]
	}
	flows := make([]float64, len(lines))
	for i, l := range lines {
		s, lerr := bbus.LineSusceptance(l, scale)
		if lerr != nil {
			return nil, fmt.Errorf("%s: line %d (%d–%d): %w", opSolve, i, l.From, l.To, lerr)
		}
		flows[i] = (angles[l.From-1] - angles[l.To-1]) * s
	}

	if opts.Verbose {
		fmt.Printf("lopf: optimal, cost=%.6g\n", sol.Objective)
	}
	return &Result{
		Converged: true,
		Status:    StatusOptimal,
		Angles:    angles,
		Dispatch:  dispatch,
		Flows:     flows,
		Cost:      sol.Objective,
		Reference: ref,
	}, nil
}
