package acpf_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlgrid/acpf"
	"github.com/katalvlaran/lvlgrid/bbus"
	"github.com/katalvlaran/lvlgrid/dcflow"
	"github.com/katalvlaran/lvlgrid/grid"
)

//----------------------------------------------------------------------------//
// Case export
//----------------------------------------------------------------------------//

// CaseSuite exercises the per-unit export on the three-bus AC scenario:
// an equal triangle (x=0.1, r=0.01), a 500 MW unit on bus 1, and loads of
// 300/200 MW on buses 2/3, exported at 100 MVA / 380 kV.
type CaseSuite struct {
	suite.Suite
	net  *grid.Network
	base acpf.Base
}

func (s *CaseSuite) SetupTest() {
	net, err := grid.New(3,
		[]grid.Line{
			{From: 1, To: 2, Reactance: 0.1, Resistance: 0.01},
			{From: 1, To: 3, Reactance: 0.1, Resistance: 0.01},
			{From: 2, To: 3, Reactance: 0.1, Resistance: 0.01},
		},
		[]grid.Generator{{Bus: 1, PMax: 500, Cost: 20}},
		[]grid.Load{{Bus: 2, P: 300}, {Bus: 3, P: 200}},
	)
	require.NoError(s.T(), err)
	s.net = net
	s.base = acpf.Base{SBaseMVA: 100, VNomKV: 380}
}

// TestExport checks every converted quantity against hand-computed values:
// ZBase = 380²/100 = 1444 Ω.
func (s *CaseSuite) TestExport() {
	c, err := acpf.FromNetwork(s.net, s.base)
	require.NoError(s.T(), err)

	require.Equal(s.T(), 100.0, c.SBaseMVA)
	require.Len(s.T(), c.Buses, 3)
	require.Equal(s.T(), acpf.Slack, c.Buses[0].Type, "reference bus exports as Slack")
	require.Equal(s.T(), acpf.PQ, c.Buses[1].Type)
	require.Equal(s.T(), acpf.PQ, c.Buses[2].Type)
	for k, b := range c.Buses {
		require.Equal(s.T(), s.net.Name(k+1), b.Name)
		require.Equal(s.T(), 380.0, b.VNomKV)
		require.Equal(s.T(), 0.9, b.VMinPU)
		require.Equal(s.T(), 1.1, b.VMaxPU)
	}

	require.Len(s.T(), c.Branches, 3)
	for i, br := range c.Branches {
		require.InDelta(s.T(), 0.1/1444, br.XPU, 1e-15, "branch %d", i)
		require.InDelta(s.T(), 0.01/1444, br.RPU, 1e-15, "branch %d", i)
	}
	require.Equal(s.T(), 1, c.Branches[0].From)
	require.Equal(s.T(), 2, c.Branches[0].To)

	require.Len(s.T(), c.Gens, 1)
	g := c.Gens[0]
	require.Equal(s.T(), 1, g.Bus)
	require.InDelta(s.T(), 5, g.PSetPU, 1e-12, "500 MW at 100 MVA base")
	require.InDelta(s.T(), -5, g.QMinPU, 1e-12)
	require.InDelta(s.T(), 5, g.QMaxPU, 1e-12)
	require.Equal(s.T(), 1.0, g.VSetPU)

	require.Len(s.T(), c.Loads, 2)
	require.InDelta(s.T(), 3, c.Loads[0].PPU, 1e-12)
	require.InDelta(s.T(), 2, c.Loads[1].PPU, 1e-12)
	require.Equal(s.T(), 0.0, c.Loads[0].QPU, "unity power factor exports pure active demand")
}

// TestPVBus adds a second unit off the reference; its bus exports as PV.
func (s *CaseSuite) TestPVBus() {
	net, err := grid.New(3,
		[]grid.Line{
			{From: 1, To: 2, Reactance: 0.1, Resistance: 0.01},
			{From: 1, To: 3, Reactance: 0.1, Resistance: 0.01},
			{From: 2, To: 3, Reactance: 0.1, Resistance: 0.01},
		},
		[]grid.Generator{{Bus: 1, PMax: 500, Cost: 20}, {Bus: 2, PMax: 100, Cost: 30}},
		[]grid.Load{{Bus: 3, P: 200}},
	)
	require.NoError(s.T(), err)

	c, err := acpf.FromNetwork(net, s.base)
	require.NoError(s.T(), err)
	require.Equal(s.T(), acpf.Slack, c.Buses[0].Type)
	require.Equal(s.T(), acpf.PV, c.Buses[1].Type)
	require.Equal(s.T(), acpf.PQ, c.Buses[2].Type)
}

// TestOptions overrides band, power factor and setpoint.
func (s *CaseSuite) TestOptions() {
	c, err := acpf.FromNetwork(s.net, s.base,
		acpf.WithVoltageBand(0.95, 1.05),
		acpf.WithPowerFactor(0.9),
		acpf.WithVoltageSetpoint(1.02),
	)
	require.NoError(s.T(), err)

	require.Equal(s.T(), 0.95, c.Buses[0].VMinPU)
	require.Equal(s.T(), 1.05, c.Buses[0].VMaxPU)
	require.Equal(s.T(), 1.02, c.Gens[0].VSetPU)

	// q = p·tan(arccos(pf)) at constant power factor.
	wantTan := math.Tan(math.Acos(0.9))
	require.InDelta(s.T(), 3*wantTan, c.Loads[0].QPU, 1e-12)
	require.InDelta(s.T(), 2*wantTan, c.Loads[1].QPU, 1e-12)
}

// TestFlowsMW maps engine per-unit flows back to MW.
func (s *CaseSuite) TestFlowsMW() {
	c, err := acpf.FromNetwork(s.net, s.base)
	require.NoError(s.T(), err)

	sol := &acpf.Solution{
		Converged:  true,
		Iterations: 4,
		FlowP:      []float64{2.5, 1.5, -0.5},
	}
	flows, err := c.FlowsMW(sol)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{250, 150, -50}, flows)
}

// TestDispatchMW densifies engine generator output by bus.
func (s *CaseSuite) TestDispatchMW() {
	c, err := acpf.FromNetwork(s.net, s.base)
	require.NoError(s.T(), err)

	sol := &acpf.Solution{Converged: true, GenP: []float64{5}}
	dispatch, err := c.DispatchMW(sol)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{500, 0, 0}, dispatch)
}

// TestRejectUnusable refuses non-converged and dimensionally wrong reports.
func (s *CaseSuite) TestRejectUnusable() {
	c, err := acpf.FromNetwork(s.net, s.base)
	require.NoError(s.T(), err)

	_, err = c.FlowsMW(nil)
	require.ErrorIs(s.T(), err, acpf.ErrNotConverged)
	_, err = c.FlowsMW(&acpf.Solution{Converged: false, Message: "max iterations"})
	require.ErrorIs(s.T(), err, acpf.ErrNotConverged)
	_, err = c.DispatchMW(&acpf.Solution{Converged: false})
	require.ErrorIs(s.T(), err, acpf.ErrNotConverged)

	_, err = c.FlowsMW(&acpf.Solution{Converged: true, FlowP: []float64{1, 2}})
	require.ErrorIs(s.T(), err, acpf.ErrDimension)
	_, err = c.DispatchMW(&acpf.Solution{Converged: true, GenP: []float64{1, 2}})
	require.ErrorIs(s.T(), err, acpf.ErrDimension)
}

// TestEngineWorkflow walks the intended loop: export the case, let the
// engine answer (here: an echo of the DC solution in per unit), convert
// back, and diff against dcflow. A faithful echo produces no mismatches.
func (s *CaseSuite) TestEngineWorkflow() {
	dc, err := dcflow.Solve(s.net, dcflow.Options{Scale: bbus.VoltageBase(380)})
	require.NoError(s.T(), err)

	c, err := acpf.FromNetwork(s.net, s.base)
	require.NoError(s.T(), err)

	echo := &acpf.Solution{Converged: true, FlowP: make([]float64, len(dc.Flows))}
	for i, f := range dc.Flows {
		echo.FlowP[i] = f / c.SBaseMVA
	}
	got, err := c.FlowsMW(echo)
	require.NoError(s.T(), err)
	require.Empty(s.T(), acpf.CompareFlows(dc.Flows, got, 1e-9))
}

func TestCaseSuite(t *testing.T) {
	suite.Run(t, new(CaseSuite))
}

//----------------------------------------------------------------------------//
// Validation and diagnostics
//----------------------------------------------------------------------------//

// TestFromNetwork_Errors walks the export validation contract.
func TestFromNetwork_Errors(t *testing.T) {
	net, err := grid.New(2,
		[]grid.Line{{From: 1, To: 2, Reactance: 0.1}},
		[]grid.Generator{{Bus: 1, PMax: 100}},
		[]grid.Load{{Bus: 2, P: 50}},
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	base := acpf.Base{SBaseMVA: 100, VNomKV: 380}

	tests := []struct {
		name string
		net  *grid.Network
		base acpf.Base
		opts []acpf.CaseOption
		want error
	}{
		{name: "nil network", net: nil, base: base, want: acpf.ErrNilNetwork},
		{name: "zero SBase", net: net, base: acpf.Base{SBaseMVA: 0, VNomKV: 380}, want: acpf.ErrBase},
		{name: "negative VNom", net: net, base: acpf.Base{SBaseMVA: 100, VNomKV: -380}, want: acpf.ErrBase},
		{name: "NaN SBase", net: net, base: acpf.Base{SBaseMVA: math.NaN(), VNomKV: 380}, want: acpf.ErrBase},
		{name: "infinite VNom", net: net, base: acpf.Base{SBaseMVA: 100, VNomKV: math.Inf(1)}, want: acpf.ErrBase},
		{
			name: "crossed band", net: net, base: base,
			opts: []acpf.CaseOption{acpf.WithVoltageBand(1.1, 0.9)},
			want: acpf.ErrVoltageBand,
		},
		{
			name: "zero band floor", net: net, base: base,
			opts: []acpf.CaseOption{acpf.WithVoltageBand(0, 1.1)},
			want: acpf.ErrVoltageBand,
		},
		{
			name: "zero power factor", net: net, base: base,
			opts: []acpf.CaseOption{acpf.WithPowerFactor(0)},
			want: acpf.ErrPowerFactor,
		},
		{
			name: "leading power factor", net: net, base: base,
			opts: []acpf.CaseOption{acpf.WithPowerFactor(1.2)},
			want: acpf.ErrPowerFactor,
		},
		{
			name: "zero setpoint", net: net, base: base,
			opts: []acpf.CaseOption{acpf.WithVoltageSetpoint(0)},
			want: acpf.ErrSetpoint,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := acpf.FromNetwork(tc.net, tc.base, tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("FromNetwork() error = %v, want %v", err, tc.want)
			}
		})
	}
}

// TestCompareFlows covers agreement, tolerance edges, and ragged input.
func TestCompareFlows(t *testing.T) {
	a := []float64{266.67, 233.33, -33.33}

	if mm := acpf.CompareFlows(a, a, 0); mm != nil {
		t.Fatalf("identical slices: mismatches = %v, want none", mm)
	}

	b := []float64{266.67, 230.00, -33.33}
	mm := acpf.CompareFlows(a, b, 0.5)
	if len(mm) != 1 || mm[0].Index != 1 {
		t.Fatalf("mismatches = %v, want exactly index 1", mm)
	}
	if math.Abs(mm[0].Gap-3.33) > 1e-9 {
		t.Fatalf("gap = %g, want 3.33", mm[0].Gap)
	}

	// Inside tolerance: no report.
	if mm := acpf.CompareFlows(a, b, 5); mm != nil {
		t.Fatalf("within tolerance: mismatches = %v, want none", mm)
	}

	// NaN never passes a tolerance check.
	if mm := acpf.CompareFlows([]float64{math.NaN()}, []float64{1}, 100); len(mm) != 1 {
		t.Fatalf("NaN input: mismatches = %v, want one", mm)
	}

	// Ragged lengths: surplus entries mismatch with an infinite gap.
	mm = acpf.CompareFlows(a, a[:2], 1e9)
	if len(mm) != 1 || mm[0].Index != 2 || !math.IsInf(mm[0].Gap, 1) || !math.IsNaN(mm[0].B) {
		t.Fatalf("ragged input: mismatches = %+v, want index 2 with +Inf gap", mm)
	}
}

// TestBusType_String covers the exported labels.
func TestBusType_String(t *testing.T) {
	tests := []struct {
		bt   acpf.BusType
		want string
	}{
		{acpf.PQ, "PQ"},
		{acpf.PV, "PV"},
		{acpf.Slack, "Slack"},
		{acpf.BusType(9), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.bt.String(); got != tc.want {
			t.Errorf("BusType(%d).String() = %q, want %q", tc.bt, got, tc.want)
		}
	}
}
