// SPDX-License-Identifier: MIT
// Package: lvlgrid/dcflow
//
// solve.go - the DC power-flow solve: reduce, factorize, scatter, recover.
//
// Contract:
//   - Pure: the input network is never mutated; equal inputs give equal
//     results on every call.
//   - Structural failures (disconnection) surface as configuration errors
//     before any factorization; ErrSingular is reserved for numerical
//     breakdown.
//   - θ[reference] is assigned zero, never solved for.
//
// Complexity:
//   - Time:  O(N³) dense LU; assembly O(N² + L).
//   - Space: O(N²).

package dcflow

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlgrid/bbus"
	"github.com/katalvlaran/lvlgrid/grid"
)

const opSolve = "dcflow.Solve"

// Solve runs a DC power flow on net.
//
// Steps:
//  1. Validate arguments and options.
//  2. Connectivity pre-check: every bus must reach the reference.
//  3. Assemble B at the configured scale.
//  4. Eliminate the reference row/column, solve B'·θ' = P' by dense LU.
//  5. Scatter angles (reference pinned to zero) and recover line flows
//     from angle differences via the same per-line susceptance used in
//     assembly.
func Solve(net *grid.Network, opts Options) (*Result, error) {
	// 1) Arguments.
	if net == nil {
		return nil, fmt.Errorf("%s: %w", opSolve, ErrNilNetwork)
	}
	if !(opts.Scale > 0) {
		return nil, fmt.Errorf("%s: scale=%g: %w", opSolve, float64(opts.Scale), ErrScale)
	}

	// 2) Structure: a stranded bus would make the reduced matrix singular;
	//    report it as the configuration error it is.
	if err := net.CheckConnected(); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	n := net.N()
	ref := net.Reference()

	// Single-bus systems are trivially solved: zero angle, nothing to flow.
	if n == 1 {
		return &Result{Angles: []float64{0}, Flows: []float64{}, Reference: ref}, nil
	}

	// 3) Assembly.
	b, err := bbus.Build(net, opts.Scale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	inj := net.Injection()

	// 4) Reduction and solve. keep maps reduced index → full 0-based bus.
	keep := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != ref-1 {
			keep = append(keep, i)
		}
	}
	m := len(keep)
	reduced := mat.NewDense(m, m, nil)
	rhs := mat.NewVecDense(m, nil)
	for bi, i := range keep {
		rhs.SetVec(bi, inj[i])
		for bj, j := range keep {
			reduced.Set(bi, bj, b.At(i, j))
		}
	}

	var theta mat.VecDense
	if err := theta.SolveVec(reduced, rhs); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("%s: reduced solve: %w", opSolve, err)
		}
		if math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("%s: %w", opSolve, ErrSingular)
		}
		// Near-singular but solved: keep the solution, surface the warning.
		if opts.Verbose {
			fmt.Printf("dcflow: reduced system ill-conditioned (cond=%.3g); keeping solution\n", float64(cond))
		}
	}

	// 5) Scatter and flow recovery.
	angles := make([]float64, n)
	for bi, i := range keep {
		angles[i] = theta.AtVec(bi)
	}

	lines := net.Lines()
	flows := make([]float64, len(lines))
	for i, l := range lines {
		s, lerr := bbus.LineSusceptance(l, opts.Scale)
		if lerr != nil {
			return nil, fmt.Errorf("%s: line %d (%d–%d): %w", opSolve, i, l.From, l.To, lerr)
		}
		flows[i] = (angles[l.From-1] - angles[l.To-1]) * s
	}

	if opts.Verbose {
		fmt.Printf("dcflow: solved %d buses, %d lines, reference=%d, max residual=%.3e\n",
			n, len(lines), ref, residual(b, angles, inj, ref))
	}
	return &Result{Angles: angles, Flows: flows, Reference: ref}, nil
}

// residual returns max_i |Σ_j B[i][j]·θ[j] − P[i]| over non-reference rows.
// Diagnostic only; the reference row absorbs system imbalance and is skipped.
func residual(b *mat.SymDense, angles, inj []float64, ref int) float64 {
	n := len(angles)
	var worst float64
	for i := 0; i < n; i++ {
		if i == ref-1 {
			continue
		}
		var sum float64
		for j := 0; j < n; j++ {
			sum += b.At(i, j) * angles[j]
		}
		if r := math.Abs(sum - inj[i]); r > worst {
			worst = r
		}
	}
	return worst
}
