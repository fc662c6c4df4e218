// SPDX-License-Identifier: MIT
// Package: lvlgrid/dcflow
//
// types.go - options, result type, and sentinel errors.

package dcflow

import (
	"errors"

	"github.com/katalvlaran/lvlgrid/bbus"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilNetwork indicates Solve received a nil model.
	ErrNilNetwork = errors.New("dcflow: network must not be nil")
	// ErrScale indicates a non-positive susceptance scale option.
	ErrScale = errors.New("dcflow: scale must be positive")
	// ErrSingular indicates the reduced susceptance matrix could not be
	// factorized. After the connectivity pre-check this is a numerical
	// pathology (e.g. extreme reactance spread), not a structural one.
	ErrSingular = errors.New("dcflow: reduced susceptance matrix is singular")
)

// Options tunes a DC power-flow solve.
type Options struct {
	// Scale converts reactance to susceptance, b = Scale/x.
	// Use bbus.VoltageBase(v) for physical units or bbus.BaseMVA(s) for
	// per-unit work.
	Scale bbus.Scale

	// Verbose prints assembly, conditioning, and residual diagnostics to
	// stdout. It never changes numeric results.
	Verbose bool
}

// DefaultOptions returns the canonical configuration:
// unit voltage base and quiet output.
func DefaultOptions() Options {
	return Options{Scale: bbus.VoltageBase(1)}
}

// Result holds a completed DC power-flow solution.
type Result struct {
	// Angles are bus voltage angles indexed by bus−1;
	// Angles[Reference−1] is exactly zero.
	Angles []float64

	// Flows are per-line active flows parallel to net.Lines(),
	// signed positive From→To.
	Flows []float64

	// Reference is the 1-based reference bus the solve was anchored to.
	Reference int
}
