// SPDX-License-Identifier: MIT
// Package: lvlgrid/lopf
//
// simplex.go - the default pure-Go LP backend on gonum's dense simplex.
//
// Contract:
//   - Converts the general-form Problem into gonum's (G,h,A,b) shape:
//     equality rows keep their side, two-sided rows split into ≤ pairs,
//     finite column bounds become unit inequality rows.
//   - lp.Convert splits every variable into positive/negative parts and
//     appends one slack per inequality, layout [xp; xn; s]; the original
//     value is recovered as x[i] = xt[i] − xt[n+i].
//   - Infeasible/unbounded verdicts map to Status values, never to Go
//     errors; remaining simplex breakdowns map to StatusFailed.
//
// Complexity:
//   - The standard form holds 2·NumCols + #inequalities variables; dense
//     pivoting makes this backend comfortable up to a few hundred buses.

package lopf

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Simplex solves Problems with gonum's dense two-phase simplex.
// The zero value is ready to use.
type Simplex struct {
	// Tol is the pivot tolerance handed to lp.Simplex; zero selects the
	// library default.
	Tol float64
}

// Solve implements Backend.
func (s Simplex) Solve(p *Problem) (*Solution, error) {
	if err := p.Check(); err != nil {
		return nil, fmt.Errorf("lopf: simplex: %w", err)
	}

	// 1) Materialize dense rows once; gonum works on dense matrices.
	nv := p.NumCols
	dense := make([][]float64, p.NumRows())
	for r := range dense {
		dense[r] = make([]float64, nv)
	}
	for _, e := range p.Entries {
		dense[e.Row][e.Col] += e.Val
	}

	// 2) Split rows into equalities (A·x = b) and inequalities (G·x ≤ h).
	var (
		eqData, gData []float64
		eqB, h        []float64
		nEq, nIneq    int
	)
	for r, row := range dense {
		lo, up := p.RowLower[r], p.RowUpper[r]
		if lo == up {
			eqData = append(eqData, row...)
			eqB = append(eqB, lo)
			nEq++
			continue
		}
		if !math.IsInf(up, 1) {
			gData = append(gData, row...)
			h = append(h, up)
			nIneq++
		}
		if !math.IsInf(lo, -1) {
			neg := make([]float64, nv)
			for c, v := range row {
				neg[c] = -v
			}
			gData = append(gData, neg...)
			h = append(h, -lo)
			nIneq++
		}
	}

	// 3) Finite column bounds become unit inequality rows (variables stay
	//    free for lp.Convert, which splits them anyway).
	for c := 0; c < nv; c++ {
		if up := p.ColUpper[c]; !math.IsInf(up, 1) {
			row := make([]float64, nv)
			row[c] = 1
			gData = append(gData, row...)
			h = append(h, up)
			nIneq++
		}
		if lo := p.ColLower[c]; !math.IsInf(lo, -1) {
			row := make([]float64, nv)
			row[c] = -1
			gData = append(gData, row...)
			h = append(h, -lo)
			nIneq++
		}
	}

	// A constraint-free program never reaches the engine: with every
	// variable free it is either trivially optimal or unbounded.
	if nIneq == 0 && nEq == 0 {
		for _, ci := range p.Cost {
			if ci != 0 {
				return &Solution{Status: StatusUnbounded, Message: "unconstrained objective"}, nil
			}
		}
		return &Solution{Status: StatusOptimal, X: make([]float64, nv)}, nil
	}

	var g, a mat.Matrix
	if nIneq > 0 {
		g = mat.NewDense(nIneq, nv, gData)
	}
	if nEq > 0 {
		a = mat.NewDense(nEq, nv, eqData)
	}

	// 4) Standard form and the simplex run.
	cNew, aNew, bNew := lp.Convert(p.Cost, g, h, a, eqB)
	opt, xStd, err := lp.Simplex(cNew, aNew, bNew, s.Tol, nil)
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return &Solution{Status: StatusInfeasible, Message: err.Error()}, nil
		case errors.Is(err, lp.ErrUnbounded):
			return &Solution{Status: StatusUnbounded, Message: err.Error()}, nil
		default:
			return &Solution{Status: StatusFailed, Message: err.Error()}, nil
		}
	}

	// 5) Fold the split variables back: x = xp − xn.
	x := make([]float64, nv)
	for i := 0; i < nv; i++ {
		x[i] = xStd[i] - xStd[nv+i]
	}
	return &Solution{Status: StatusOptimal, X: x, Objective: opt}, nil
}
