// SPDX-License-Identifier: MIT
// Package: lvlgrid/lopf
//
// types.go - options, result, solver status, and sentinel errors.

package lopf

import (
	"errors"
	"math"
)

// Sentinel errors returned by Solve and the backends.
var (
	// ErrNilNetwork indicates Solve received a nil model.
	ErrNilNetwork = errors.New("lopf: network must not be nil")
	// ErrBaseMVA indicates a non-positive per-unit base.
	ErrBaseMVA = errors.New("lopf: BaseMVA must be positive")
	// ErrCapacity indicates a line capacity that is neither positive nor +Inf.
	ErrCapacity = errors.New("lopf: LineCapacity must be positive or +Inf")
	// ErrBadProblem indicates a structurally inconsistent Problem.
	ErrBadProblem = errors.New("lopf: malformed problem")
)

// Status is the outcome class a backend reports for an LP run.
type Status int

const (
	// StatusFailed covers mechanical or numerical breakdown with no usable
	// verdict. It is the zero value, so an empty Result reads as failed.
	StatusFailed Status = iota
	// StatusOptimal means an optimal solution was found.
	StatusOptimal
	// StatusInfeasible means no dispatch can satisfy the constraints.
	StatusInfeasible
	// StatusUnbounded means the objective can decrease without limit.
	StatusUnbounded
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "failed"
	}
}

// Options tunes a LOPF solve.
type Options struct {
	// BaseMVA is the per-unit power base for susceptance scaling.
	// Dispatch, flows and cost do not depend on it; angles rescale.
	BaseMVA float64

	// LineCapacity is a uniform thermal limit applied to every line.
	// +Inf (the default) omits flow constraints from the program entirely.
	LineCapacity float64

	// Backend is the LP engine; nil selects the pure-Go Simplex backend.
	Backend Backend

	// Verbose prints problem dimensions and solver status to stdout.
	// It never changes numeric results.
	Verbose bool
}

// DefaultOptions returns the canonical configuration: 100 MVA base,
// unconstrained lines, pure-Go backend, quiet output.
func DefaultOptions() Options {
	return Options{
		BaseMVA:      100,
		LineCapacity: math.Inf(1),
	}
}

// Result holds the outcome of a LOPF solve.
//
// When Converged is false the numeric fields are deliberately empty: a
// non-converged model must never look like a genuine zero-flow solution.
type Result struct {
	// Converged is true iff Status is StatusOptimal.
	Converged bool
	// Status is the backend's verdict.
	Status Status

	// Angles are bus voltage angles indexed by bus−1 (per-unit scaling);
	// Angles[Reference−1] is exactly zero. Nil unless Converged.
	Angles []float64
	// Dispatch is the dense per-bus generation vector (zero where no unit
	// sits). Nil unless Converged.
	Dispatch []float64
	// Flows are per-line active flows parallel to net.Lines(), signed
	// positive From→To. Nil unless Converged.
	Flows []float64
	// Cost is the optimal objective Σ cost·dispatch. Zero unless Converged.
	Cost float64

	// Reference is the 1-based reference bus the formulation anchored to.
	Reference int
}
