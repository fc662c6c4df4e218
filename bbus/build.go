// SPDX-License-Identifier: MIT
// Package: lvlgrid/bbus
//
// build.go - susceptance scaling and weighted-Laplacian assembly.
//
// Contract:
//   - Build(net, scale) is pure: fresh output, no mutation, deterministic.
//   - Assembly and LineSusceptance share one formula, b = scale/x, so a
//     solver that builds B here and recovers flows there stays consistent.
//   - Returns only wrapped sentinel errors; never panics on user input.

package bbus

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Sentinel errors for matrix assembly.
var (
	// ErrNilNetwork indicates Build received a nil model.
	ErrNilNetwork = errors.New("bbus: network must not be nil")
	// ErrScale indicates a non-positive susceptance scale.
	ErrScale = errors.New("bbus: scale must be positive")
	// ErrReactance indicates a non-positive line reactance.
	ErrReactance = errors.New("bbus: line reactance must be positive")
)

const opBuild = "bbus.Build"

// Scale is the multiplier applied to 1/x when turning a reactance into a
// susceptance. Construct it with VoltageBase or BaseMVA; Build validates it.
type Scale float64

// VoltageBase returns the physical-unit DC-flow scale v², for a nominal
// voltage v. With x in ohms and injections in MW, flows come out in MW.
func VoltageBase(vNom float64) Scale { return Scale(vNom * vNom) }

// BaseMVA returns the per-unit scale used by the LOPF formulation.
// Dispatch, cost, and flows are invariant to the base chosen; only angle
// magnitudes rescale.
func BaseMVA(s float64) Scale { return Scale(s) }

// LineSusceptance returns b = scale/x for one line, the exact value Build
// adds into the matrix.
func LineSusceptance(l grid.Line, scale Scale) (float64, error) {
	if !(scale > 0) {
		return 0, fmt.Errorf("scale=%g: %w", float64(scale), ErrScale)
	}
	if !(l.Reactance > 0) {
		return 0, fmt.Errorf("x=%g: %w", l.Reactance, ErrReactance)
	}
	return float64(scale) / l.Reactance, nil
}

// Build assembles the N×N bus-susceptance matrix of net at the given scale.
//
// Steps:
//  1. Validate the model handle and the scale.
//  2. Allocate the zero N×N symmetric matrix.
//  3. Per line: b = scale/x; add b to both diagonal entries, subtract b
//     from the off-diagonal pair. Parallel circuits accumulate additively.
//
// The result is a weighted graph Laplacian: symmetric, zero row sums,
// singular by construction (solvers eliminate the reference row/column).
func Build(net *grid.Network, scale Scale) (*mat.SymDense, error) {
	// 1) Validate inputs.
	if net == nil {
		return nil, fmt.Errorf("%s: %w", opBuild, ErrNilNetwork)
	}
	if !(scale > 0) {
		return nil, fmt.Errorf("%s: scale=%g: %w", opBuild, float64(scale), ErrScale)
	}

	// 2) Fresh zero matrix; never reuse caller memory.
	b := mat.NewSymDense(net.N(), nil)

	// 3) Stamp every line.
	for i, l := range net.Lines() {
		s, err := LineSusceptance(l, scale)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d (%d–%d): %w", opBuild, i, l.From, l.To, err)
		}
		f, t := l.From-1, l.To-1
		b.SetSym(f, f, b.At(f, f)+s)
		b.SetSym(t, t, b.At(t, t)+s)
		b.SetSym(f, t, b.At(f, t)-s)
	}
	return b, nil
}
