// SPDX-License-Identifier: MIT
// Package: lvlgrid/acpf
//
// compare.go - flow comparison diagnostics.

package acpf

import "math"

// CompareFlows reports every index where a and b differ by more than tol.
// Indices present in only one slice always mismatch, with the missing side
// read as NaN and an infinite gap. The result is diagnostics for logs and
// tests; an empty slice means agreement.
func CompareFlows(a, b []float64, tol float64) []Mismatch {
	var out []Mismatch
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if gap := math.Abs(a[i] - b[i]); gap > tol || math.IsNaN(gap) {
			out = append(out, Mismatch{Index: i, A: a[i], B: b[i], Gap: gap})
		}
	}
	for i := n; i < len(a); i++ {
		out = append(out, Mismatch{Index: i, A: a[i], B: math.NaN(), Gap: math.Inf(1)})
	}
	for i := n; i < len(b); i++ {
		out = append(out, Mismatch{Index: i, A: math.NaN(), B: b[i], Gap: math.Inf(1)})
	}
	return out
}
