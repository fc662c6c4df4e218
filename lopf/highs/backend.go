//go:build (linux || darwin) && (amd64 || arm64)

// SPDX-License-Identifier: MIT
// Package: lvlgrid/lopf/highs
//
// backend.go - lopf.Backend adapter over the embedded HiGHS solver.
//
// Contract:
//   - The Problem is passed through unchanged: costs, column boxes and
//     two-sided rows are native HiGHS concepts. Duplicate sparse entries
//     are summed first, matching the dense accumulation of the pure-Go
//     backend (gohighs would keep only the last duplicate).
//   - Solver verdicts travel in Solution.Status; Go errors are reserved
//     for mechanical failure.

package highs

import (
	"fmt"

	gohighs "github.com/bartolsthoorn/gohighs/highs"

	"github.com/katalvlaran/lvlgrid/lopf"
)

// Backend solves lopf Problems with HiGHS. The zero value is ready to use
// and runs silently with no time limit.
type Backend struct {
	// Output echoes the HiGHS solver log to stdout.
	Output bool
	// TimeLimit caps a single solve, in seconds; zero means unlimited.
	// Hitting the limit surfaces as StatusFailed, never as a Go error.
	TimeLimit float64
}

// Solve implements lopf.Backend.
func (b Backend) Solve(p *lopf.Problem) (*lopf.Solution, error) {
	if err := p.Check(); err != nil {
		return nil, fmt.Errorf("lopf: highs: %w", err)
	}

	// 1) Transcribe the program; only the sparse matrix needs care.
	m := &gohighs.Model{
		ColCosts: p.Cost,
		ColLower: p.ColLower,
		ColUpper: p.ColUpper,
		RowLower: p.RowLower,
		RowUpper: p.RowUpper,
	}
	m.ConstMatrix = mergeEntries(p.Entries)

	// 2) Run the engine.
	opts := []gohighs.SolveOption{gohighs.WithOutput(b.Output)}
	if b.TimeLimit > 0 {
		opts = append(opts, gohighs.WithTimeLimit(b.TimeLimit))
	}
	sol, err := m.Solve(opts...)
	if err != nil {
		return nil, fmt.Errorf("lopf: highs: %w", err)
	}

	// 3) Map the verdict.
	switch sol.Status {
	case gohighs.ModelStatusOptimal:
		return &lopf.Solution{
			Status:    lopf.StatusOptimal,
			X:         sol.ColValues,
			Objective: sol.Objective,
		}, nil
	case gohighs.ModelStatusInfeasible, gohighs.ModelStatusUnboundedOrInfeasible:
		return &lopf.Solution{Status: lopf.StatusInfeasible, Message: sol.Status.String()}, nil
	case gohighs.ModelStatusUnbounded:
		return &lopf.Solution{Status: lopf.StatusUnbounded, Message: sol.Status.String()}, nil
	default:
		return &lopf.Solution{Status: lopf.StatusFailed, Message: sol.Status.String()}, nil
	}
}

// mergeEntries converts sparse entries to HiGHS nonzeros, summing duplicate
// (row, col) coordinates in first-occurrence order.
func mergeEntries(entries []lopf.Entry) []gohighs.Nonzero {
	type coord struct{ row, col int }
	at := make(map[coord]int, len(entries))
	out := make([]gohighs.Nonzero, 0, len(entries))
	for _, e := range entries {
		c := coord{e.Row, e.Col}
		if i, ok := at[c]; ok {
			out[i].Val += e.Val
			continue
		}
		at[c] = len(out)
		out = append(out, gohighs.Nonzero{Row: e.Row, Col: e.Col, Val: e.Val})
	}
	return out
}
