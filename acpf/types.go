// SPDX-License-Identifier: MIT
// Package: lvlgrid/acpf
//
// types.go - per-unit case schema, engine solution, and sentinel errors.

package acpf

import "errors"

// Sentinel errors returned by the export and import paths.
var (
	// ErrNilNetwork indicates FromNetwork received a nil model.
	ErrNilNetwork = errors.New("acpf: network must not be nil")
	// ErrBase indicates a non-positive power or voltage base.
	ErrBase = errors.New("acpf: SBase and VNom must be positive and finite")
	// ErrVoltageBand indicates an empty or non-positive magnitude band.
	ErrVoltageBand = errors.New("acpf: voltage band must satisfy 0 < min ≤ max")
	// ErrPowerFactor indicates a load power factor outside (0, 1].
	ErrPowerFactor = errors.New("acpf: power factor must be in (0, 1]")
	// ErrSetpoint indicates a non-positive generator voltage setpoint.
	ErrSetpoint = errors.New("acpf: voltage setpoint must be positive")
	// ErrNotConverged indicates an attempt to read MW quantities out of a
	// solution the engine did not converge.
	ErrNotConverged = errors.New("acpf: engine solution did not converge")
	// ErrDimension indicates an engine solution whose vectors do not match
	// the case they are claimed to solve.
	ErrDimension = errors.New("acpf: solution dimensions do not match the case")
)

// BusType classifies a bus for the AC engine. The zero value is PQ, the
// type of a bus with no controlling equipment.
type BusType int

const (
	// PQ buses have fixed active and reactive demand.
	PQ BusType = iota
	// PV buses hold active power and voltage magnitude.
	PV
	// Slack is the angle reference; it absorbs the system mismatch.
	Slack
)

// String implements fmt.Stringer.
func (t BusType) String() string {
	switch t {
	case PQ:
		return "PQ"
	case PV:
		return "PV"
	case Slack:
		return "Slack"
	default:
		return "unknown"
	}
}

// Base fixes the per-unit system for one export.
type Base struct {
	// SBaseMVA is the power base in MVA.
	SBaseMVA float64
	// VNomKV is the nominal voltage in kV, uniform across buses.
	VNomKV float64
}

// Bus is one exported bus.
type Bus struct {
	// Name mirrors grid.Network naming.
	Name string
	// Type is Slack, PV, or PQ.
	Type BusType
	// VNomKV is the nominal voltage in kV.
	VNomKV float64
	// VMinPU/VMaxPU bound the acceptable voltage magnitude.
	VMinPU, VMaxPU float64
}

// Branch is one exported line, impedances in per unit.
type Branch struct {
	// From/To are 1-based bus indices, parallel to grid.Network lines.
	From, To int
	// RPU/XPU are series resistance and reactance in per unit.
	RPU, XPU float64
}

// Gen is one exported generating unit.
type Gen struct {
	// Bus is the 1-based host bus.
	Bus int
	// PSetPU is the scheduled active output in per unit.
	PSetPU float64
	// QMinPU/QMaxPU bound reactive support.
	QMinPU, QMaxPU float64
	// VSetPU is the regulated voltage magnitude.
	VSetPU float64
}

// Load is one exported demand, per unit.
type Load struct {
	// Bus is the 1-based host bus.
	Bus int
	// PPU/QPU are active and reactive demand in per unit.
	PPU, QPU float64
}

// Case is a complete per-unit snapshot for an external AC engine. Buses
// are indexed by bus−1; Branches, Gens and Loads keep the network's own
// ordering, so engine output maps back index-for-index.
type Case struct {
	// SBaseMVA is retained for the inverse MW mapping.
	SBaseMVA float64

	Buses    []Bus
	Branches []Branch
	Gens     []Gen
	Loads    []Load
}

// Solution is an external engine's report. Vector fields are parallel to
// the Case: VMagPU/VAngRad to Buses, FlowP/FlowQ to Branches, GenP/GenQ
// to Gens, all in per unit (angles in radians).
type Solution struct {
	// Converged reports whether the engine's iteration settled.
	Converged bool
	// Iterations is the engine's iteration count.
	Iterations int

	VMagPU  []float64
	VAngRad []float64
	FlowP   []float64
	FlowQ   []float64
	GenP    []float64
	GenQ    []float64

	// Message carries engine diagnostics verbatim; never parsed.
	Message string
}

// Mismatch records one index where two flow vectors disagree.
type Mismatch struct {
	// Index is the position in both input slices.
	Index int
	// A and B are the compared values; a missing entry reads as NaN.
	A, B float64
	// Gap is |A−B|, or +Inf when one side is missing.
	Gap float64
}
