package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlgrid/grid"
)

//----------------------------------------------------------------------------//
// Construction error matrix
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects every class of malformed input
// with the matching sentinel.
func TestNew_Errors(t *testing.T) {
	okLines := []grid.Line{{From: 1, To: 2, Reactance: 0.1}}
	okGens := []grid.Generator{{Bus: 1, PMax: 100, Cost: 10}}

	cases := []struct {
		name  string
		buses int
		lines []grid.Line
		gens  []grid.Generator
		loads []grid.Load
		opts  []grid.Option
		err   error
	}{
		{"NoBuses", 0, nil, nil, nil, nil, grid.ErrNoBuses},
		{"BadNames", 2, okLines, okGens, nil,
			[]grid.Option{grid.WithNames([]string{"only one"})}, grid.ErrBadNames},
		{"LineFromRange", 2, []grid.Line{{From: 0, To: 2, Reactance: 0.1}}, okGens, nil, nil, grid.ErrBusRange},
		{"LineToRange", 2, []grid.Line{{From: 1, To: 3, Reactance: 0.1}}, okGens, nil, nil, grid.ErrBusRange},
		{"SelfLoop", 2, []grid.Line{{From: 1, To: 1, Reactance: 0.1}}, okGens, nil, nil, grid.ErrSelfLoop},
		{"ZeroReactance", 2, []grid.Line{{From: 1, To: 2}}, okGens, nil, nil, grid.ErrReactance},
		{"NegativeReactance", 2, []grid.Line{{From: 1, To: 2, Reactance: -0.2}}, okGens, nil, nil, grid.ErrReactance},
		{"NegativeResistance", 2, []grid.Line{{From: 1, To: 2, Reactance: 0.1, Resistance: -1}}, okGens, nil, nil, grid.ErrResistance},
		{"GenBusRange", 2, okLines, []grid.Generator{{Bus: 5, PMax: 1}}, nil, nil, grid.ErrBusRange},
		{"DuplicateGen", 2, okLines,
			[]grid.Generator{{Bus: 1, PMax: 1}, {Bus: 1, PMax: 2}}, nil, nil, grid.ErrDuplicateGenerator},
		{"NegativePMax", 2, okLines, []grid.Generator{{Bus: 1, PMax: -5}}, nil, nil, grid.ErrNegativePMax},
		{"NegativeCost", 2, okLines, []grid.Generator{{Bus: 1, PMax: 5, Cost: -1}}, nil, nil, grid.ErrNegativeCost},
		{"LoadBusRange", 2, okLines, okGens, []grid.Load{{Bus: 3, P: 10}}, nil, grid.ErrBusRange},
		{"DuplicateLoad", 2, okLines, okGens,
			[]grid.Load{{Bus: 2, P: 10}, {Bus: 2, P: 20}}, nil, grid.ErrDuplicateLoad},
		{"NegativeLoad", 2, okLines, okGens, []grid.Load{{Bus: 2, P: -10}}, nil, grid.ErrNegativeLoad},
		{"ReferenceRange", 2, okLines, okGens, nil,
			[]grid.Option{grid.WithReference(7)}, grid.ErrBadReference},
		{"NoReferenceRule", 2, okLines, nil, []grid.Load{{Bus: 2, P: 10}}, nil, grid.ErrNoReference},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.buses, tc.lines, tc.gens, tc.loads, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New() error = %v; want %v", err, tc.err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Model behaviour
//----------------------------------------------------------------------------//

// NetworkSuite exercises the frozen model on the three-bus triangle.
type NetworkSuite struct {
	suite.Suite
	net *grid.Network
}

func (s *NetworkSuite) SetupTest() {
	net, err := grid.New(3,
		[]grid.Line{
			{From: 1, To: 2, Reactance: 0.1, Resistance: 0.01},
			{From: 1, To: 3, Reactance: 0.1, Resistance: 0.01},
			{From: 2, To: 3, Reactance: 0.1, Resistance: 0.01},
		},
		[]grid.Generator{
			{Bus: 2, PMax: 300, Cost: 50}, // deliberately out of bus order
			{Bus: 1, PMax: 400, Cost: 20},
		},
		[]grid.Load{{Bus: 2, P: 200}, {Bus: 3, P: 300}},
	)
	require.NoError(s.T(), err)
	s.net = net
}

// TestReferenceAuto expects the lowest-index generator bus as reference.
func (s *NetworkSuite) TestReferenceAuto() {
	require.Equal(s.T(), 1, s.net.Reference())
}

// TestReferenceExplicit pins the reference to a non-generator bus.
func (s *NetworkSuite) TestReferenceExplicit() {
	net, err := grid.New(3,
		[]grid.Line{{From: 1, To: 2, Reactance: 0.1}, {From: 2, To: 3, Reactance: 0.1}},
		[]grid.Generator{{Bus: 1, PMax: 100}},
		nil,
		grid.WithReference(3),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, net.Reference())
}

// TestGeneratorsSorted verifies the stable by-bus ordinal ordering.
func (s *NetworkSuite) TestGeneratorsSorted() {
	gens := s.net.Generators()
	require.Len(s.T(), gens, 2)
	require.Equal(s.T(), 1, gens[0].Bus)
	require.Equal(s.T(), 2, gens[1].Bus)
}

// TestInjection checks the dense generation-minus-load vector.
func (s *NetworkSuite) TestInjection() {
	require.Equal(s.T(), []float64{400, 100, -300}, s.net.Injection())
}

// TestDenseVectors checks the per-bus arrays with zero-means-absent entries.
func (s *NetworkSuite) TestDenseVectors() {
	require.Equal(s.T(), []float64{400, 300, 0}, s.net.PMaxByBus())
	require.Equal(s.T(), []float64{20, 50, 0}, s.net.CostByBus())
	require.Equal(s.T(), []float64{0, 200, 300}, s.net.LoadByBus())
}

// TestTotals checks the aggregate helpers.
func (s *NetworkSuite) TestTotals() {
	require.Equal(s.T(), 500.0, s.net.TotalLoad())
	require.Equal(s.T(), 700.0, s.net.TotalPMax())
}

// TestAccessorsReturnCopies ensures callers cannot mutate the frozen model.
func (s *NetworkSuite) TestAccessorsReturnCopies() {
	s.net.Lines()[0].Reactance = 99
	s.net.Injection()[0] = -1
	require.Equal(s.T(), 0.1, s.net.Lines()[0].Reactance)
	require.Equal(s.T(), 400.0, s.net.Injection()[0])
}

// TestNameFallback covers unnamed and named buses.
func (s *NetworkSuite) TestNameFallback() {
	require.Equal(s.T(), "Bus 2", s.net.Name(2))

	named, err := grid.New(2,
		[]grid.Line{{From: 1, To: 2, Reactance: 0.5}},
		[]grid.Generator{{Bus: 1, PMax: 10}},
		nil,
		grid.WithNames([]string{"North", "South"}),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "South", named.Name(2))
}

// TestParallelLines verifies parallel circuits between one pair are legal.
func (s *NetworkSuite) TestParallelLines() {
	net, err := grid.New(2,
		[]grid.Line{
			{From: 1, To: 2, Reactance: 0.2},
			{From: 1, To: 2, Reactance: 0.4},
		},
		[]grid.Generator{{Bus: 1, PMax: 10}},
		nil,
	)
	require.NoError(s.T(), err)
	require.Len(s.T(), net.Lines(), 2)
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

//----------------------------------------------------------------------------//
// Connectivity
//----------------------------------------------------------------------------//

// TestUnreachable_Disconnected expects the stranded buses in ascending order.
func TestUnreachable_Disconnected(t *testing.T) {
	net, err := grid.New(4,
		[]grid.Line{{From: 1, To: 2, Reactance: 0.1}, {From: 3, To: 4, Reactance: 0.1}},
		[]grid.Generator{{Bus: 1, PMax: 50}},
		nil,
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	got := net.Unreachable()
	want := []int{3, 4}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Unreachable() = %v; want %v", got, want)
	}

	cErr := net.CheckConnected()
	if !errors.Is(cErr, grid.ErrDisconnected) {
		t.Errorf("CheckConnected() = %v; want ErrDisconnected", cErr)
	}
	var dErr *grid.DisconnectedError
	if !errors.As(cErr, &dErr) {
		t.Fatalf("CheckConnected() is not a *DisconnectedError: %v", cErr)
	}
	if len(dErr.Buses) != 2 || dErr.Buses[0] != 3 || dErr.Buses[1] != 4 {
		t.Errorf("DisconnectedError.Buses = %v; want [3 4]", dErr.Buses)
	}
}

// TestUnreachable_Connected expects no stranded buses on the triangle.
func TestUnreachable_Connected(t *testing.T) {
	net, err := grid.New(3,
		[]grid.Line{
			{From: 1, To: 2, Reactance: 0.1},
			{From: 2, To: 3, Reactance: 0.1},
		},
		[]grid.Generator{{Bus: 1, PMax: 50}},
		nil,
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := net.Unreachable(); len(got) != 0 {
		t.Errorf("Unreachable() = %v; want empty", got)
	}
	if cErr := net.CheckConnected(); cErr != nil {
		t.Errorf("CheckConnected() = %v; want nil", cErr)
	}
}

// TestUnreachable_SingleBus covers the trivial one-bus network.
func TestUnreachable_SingleBus(t *testing.T) {
	net, err := grid.New(1, nil, []grid.Generator{{Bus: 1, PMax: 5}}, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := net.Unreachable(); len(got) != 0 {
		t.Errorf("Unreachable() = %v; want empty", got)
	}
}
