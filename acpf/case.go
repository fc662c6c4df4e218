// SPDX-License-Identifier: MIT
// Package: lvlgrid/acpf
//
// case.go - per-unit case export and the inverse MW conversions.
//
// Contract:
//   - ZBase = VNom²/SBase; impedances divide by ZBase, powers by SBase.
//   - Ordering is preserved: Branches ∥ net.Lines(), Gens ∥
//     net.Generators(), Loads ∥ net.Loads(); Buses are indexed by bus−1.
//   - Units are scheduled at PMax, matching the DC injection convention,
//     with reactive headroom of ±PMax around a fixed voltage setpoint.

package acpf

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlgrid/grid"
)

const (
	opFrom     = "acpf.FromNetwork"
	opFlows    = "acpf.Case.FlowsMW"
	opDispatch = "acpf.Case.DispatchMW"
)

type caseOptions struct {
	vMin, vMax  float64
	powerFactor float64
	vSet        float64
}

func defaultCaseOptions() caseOptions {
	return caseOptions{vMin: 0.9, vMax: 1.1, powerFactor: 1, vSet: 1}
}

// CaseOption tweaks a FromNetwork export.
type CaseOption func(*caseOptions)

// WithVoltageBand overrides the default 0.9..1.1 pu magnitude band.
func WithVoltageBand(min, max float64) CaseOption {
	return func(o *caseOptions) { o.vMin, o.vMax = min, max }
}

// WithPowerFactor exports every load at a constant power factor instead of
// purely active demand: q = p·tan(arccos(pf)).
func WithPowerFactor(pf float64) CaseOption {
	return func(o *caseOptions) { o.powerFactor = pf }
}

// WithVoltageSetpoint overrides the default 1.0 pu generator setpoint.
func WithVoltageSetpoint(v float64) CaseOption {
	return func(o *caseOptions) { o.vSet = v }
}

// FromNetwork exports net as a per-unit AC case under the given bases.
//
// Steps:
//  1. Validate the network, the bases, and the options.
//  2. Type the buses: reference → Slack, other generator buses → PV,
//     the rest → PQ.
//  3. Convert branches by ZBase, units and loads by SBase.
func FromNetwork(net *grid.Network, base Base, opts ...CaseOption) (*Case, error) {
	// 1) Inputs.
	if net == nil {
		return nil, fmt.Errorf("%s: %w", opFrom, ErrNilNetwork)
	}
	if !(base.SBaseMVA > 0) || math.IsInf(base.SBaseMVA, 1) {
		return nil, fmt.Errorf("%s: SBase=%g: %w", opFrom, base.SBaseMVA, ErrBase)
	}
	if !(base.VNomKV > 0) || math.IsInf(base.VNomKV, 1) {
		return nil, fmt.Errorf("%s: VNom=%g: %w", opFrom, base.VNomKV, ErrBase)
	}
	o := defaultCaseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.vMin > 0) || !(o.vMin <= o.vMax) || math.IsInf(o.vMax, 1) {
		return nil, fmt.Errorf("%s: band [%g, %g]: %w", opFrom, o.vMin, o.vMax, ErrVoltageBand)
	}
	if !(o.powerFactor > 0) || o.powerFactor > 1 {
		return nil, fmt.Errorf("%s: pf=%g: %w", opFrom, o.powerFactor, ErrPowerFactor)
	}
	if !(o.vSet > 0) || math.IsInf(o.vSet, 1) {
		return nil, fmt.Errorf("%s: vset=%g: %w", opFrom, o.vSet, ErrSetpoint)
	}

	n := net.N()
	ref := net.Reference()
	gens := net.Generators()
	lines := net.Lines()
	loads := net.Loads()
	zBase := base.VNomKV * base.VNomKV / base.SBaseMVA

	// 2) Buses.
	hasGen := make([]bool, n)
	for _, g := range gens {
		hasGen[g.Bus-1] = true
	}
	buses := make([]Bus, n)
	for k := 0; k < n; k++ {
		t := PQ
		switch {
		case k == ref-1:
			t = Slack
		case hasGen[k]:
			t = PV
		}
		buses[k] = Bus{
			Name:   net.Name(k + 1),
			Type:   t,
			VNomKV: base.VNomKV,
			VMinPU: o.vMin,
			VMaxPU: o.vMax,
		}
	}

	// 3) Branches, units, loads.
	branches := make([]Branch, len(lines))
	for i, l := range lines {
		branches[i] = Branch{
			From: l.From,
			To:   l.To,
			RPU:  l.Resistance / zBase,
			XPU:  l.Reactance / zBase,
		}
	}
	caseGens := make([]Gen, len(gens))
	for i, g := range gens {
		pPU := g.PMax / base.SBaseMVA
		caseGens[i] = Gen{
			Bus:    g.Bus,
			PSetPU: pPU,
			QMinPU: -pPU,
			QMaxPU: pPU,
			VSetPU: o.vSet,
		}
	}
	tanPhi := math.Tan(math.Acos(o.powerFactor))
	caseLoads := make([]Load, len(loads))
	for i, l := range loads {
		pPU := l.P / base.SBaseMVA
		caseLoads[i] = Load{Bus: l.Bus, PPU: pPU, QPU: pPU * tanPhi}
	}

	return &Case{
		SBaseMVA: base.SBaseMVA,
		Buses:    buses,
		Branches: branches,
		Gens:     caseGens,
		Loads:    caseLoads,
	}, nil
}

// FlowsMW converts an engine's per-unit branch flows back to MW, parallel
// to Branches. It refuses non-converged or dimensionally wrong solutions.
func (c *Case) FlowsMW(sol *Solution) ([]float64, error) {
	if sol == nil || !sol.Converged {
		return nil, fmt.Errorf("%s: %w", opFlows, ErrNotConverged)
	}
	if len(sol.FlowP) != len(c.Branches) {
		return nil, fmt.Errorf("%s: %d flows for %d branches: %w",
			opFlows, len(sol.FlowP), len(c.Branches), ErrDimension)
	}
	flows := make([]float64, len(sol.FlowP))
	for i, f := range sol.FlowP {
		flows[i] = f * c.SBaseMVA
	}
	return flows, nil
}

// DispatchMW converts an engine's per-unit generator output into the dense
// per-bus MW vector used across the repo (index = bus−1, zero where no
// unit sits).
func (c *Case) DispatchMW(sol *Solution) ([]float64, error) {
	if sol == nil || !sol.Converged {
		return nil, fmt.Errorf("%s: %w", opDispatch, ErrNotConverged)
	}
	if len(sol.GenP) != len(c.Gens) {
		return nil, fmt.Errorf("%s: %d outputs for %d units: %w",
			opDispatch, len(sol.GenP), len(c.Gens), ErrDimension)
	}
	dispatch := make([]float64, len(c.Buses))
	for i, g := range c.Gens {
		dispatch[g.Bus-1] += sol.GenP[i] * c.SBaseMVA
	}
	return dispatch, nil
}
