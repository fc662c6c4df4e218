// SPDX-License-Identifier: MIT
// Package: lvlgrid/lopf
//
// problem.go - the backend-neutral linear program.
//
// Contract:
//   - A Problem is a general-form LP:
//       minimize  Cost·x
//       subject to RowLower ≤ A·x ≤ RowUpper,  ColLower ≤ x ≤ ColUpper,
//     with A given as sparse (row, col, val) entries and ±Inf meaning
//     "unbounded on that side".
//   - Backends report solver verdicts through Solution.Status; a Go error
//     from Solve is reserved for mechanical failure (malformed problem,
//     engine breakdown), never for infeasibility.

package lopf

import (
	"fmt"
	"math"
)

// Entry is one nonzero coefficient of the constraint matrix.
type Entry struct {
	Row, Col int
	Val      float64
}

// Problem is a general-form linear program, independent of any LP engine.
// Build it with NewProblem and AddRow; column bounds default to free.
type Problem struct {
	// NumCols is the variable count; every column index lives in [0, NumCols).
	NumCols int
	// Cost holds the objective coefficients, length NumCols.
	Cost []float64
	// ColLower/ColUpper bound each variable; ±Inf = free side.
	ColLower []float64
	ColUpper []float64
	// RowLower/RowUpper bound each constraint row; equal values make an
	// equality row, ±Inf relax a side.
	RowLower []float64
	RowUpper []float64
	// Entries is the sparse constraint matrix in insertion order.
	Entries []Entry
}

// NewProblem returns an empty program over cols free variables with zero
// objective and no rows.
func NewProblem(cols int) *Problem {
	p := &Problem{
		NumCols:  cols,
		Cost:     make([]float64, cols),
		ColLower: make([]float64, cols),
		ColUpper: make([]float64, cols),
	}
	for i := 0; i < cols; i++ {
		p.ColLower[i] = math.Inf(-1)
		p.ColUpper[i] = math.Inf(1)
	}
	return p
}

// AddRow appends the constraint lower ≤ Σ vals[i]·x[cols[i]] ≤ upper.
// cols and vals must be parallel; zero coefficients are skipped.
func (p *Problem) AddRow(lower float64, cols []int, vals []float64, upper float64) {
	row := len(p.RowLower)
	p.RowLower = append(p.RowLower, lower)
	p.RowUpper = append(p.RowUpper, upper)
	for i, c := range cols {
		if vals[i] != 0 {
			p.Entries = append(p.Entries, Entry{Row: row, Col: c, Val: vals[i]})
		}
	}
}

// NumRows returns the constraint count.
func (p *Problem) NumRows() int { return len(p.RowLower) }

// Check validates internal consistency: slice lengths, index ranges, and
// bound ordering. Backends call it before touching an engine.
func (p *Problem) Check() error {
	if p.NumCols < 1 {
		return fmt.Errorf("%w: no variables", ErrBadProblem)
	}
	if len(p.Cost) != p.NumCols || len(p.ColLower) != p.NumCols || len(p.ColUpper) != p.NumCols {
		return fmt.Errorf("%w: column slices must have length %d", ErrBadProblem, p.NumCols)
	}
	if len(p.RowLower) != len(p.RowUpper) {
		return fmt.Errorf("%w: row bound slices disagree (%d vs %d)", ErrBadProblem, len(p.RowLower), len(p.RowUpper))
	}
	for c := 0; c < p.NumCols; c++ {
		if p.ColLower[c] > p.ColUpper[c] {
			return fmt.Errorf("%w: column %d bounds cross (%g > %g)", ErrBadProblem, c, p.ColLower[c], p.ColUpper[c])
		}
	}
	for r := range p.RowLower {
		if p.RowLower[r] > p.RowUpper[r] {
			return fmt.Errorf("%w: row %d bounds cross (%g > %g)", ErrBadProblem, r, p.RowLower[r], p.RowUpper[r])
		}
	}
	rows := p.NumRows()
	for _, e := range p.Entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= p.NumCols {
			return fmt.Errorf("%w: entry (%d,%d) out of %d×%d", ErrBadProblem, e.Row, e.Col, rows, p.NumCols)
		}
	}
	return nil
}

// Solution is a backend's report for one Problem.
type Solution struct {
	// Status is the verdict; X and Objective are meaningful only for
	// StatusOptimal.
	Status Status
	// X holds primal values, length Problem.NumCols.
	X []float64
	// Objective is Cost·X at the optimum.
	Objective float64
	// Message carries engine-specific diagnostics for logs; never parsed.
	Message string
}

// Backend is a pluggable LP engine.
type Backend interface {
	// Solve runs the program. Solver verdicts travel in Solution.Status;
	// the error return is for mechanical failure only.
	Solve(p *Problem) (*Solution, error)
}
