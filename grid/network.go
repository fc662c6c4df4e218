// SPDX-License-Identifier: MIT
// Package: lvlgrid/grid
//
// network.go - the validating constructor and the immutable Network model.
//
// Contract:
//   - New performs every structural check; a returned *Network is always
//     internally consistent and never mutated afterwards.
//   - All input slices are copied; the model never aliases caller memory.
//   - The reference bus is resolved here, once, for every downstream solver:
//     explicit WithReference wins, otherwise the lowest-index generator bus.
//   - Returns only wrapped sentinel errors; never panics on user input.
//
// Complexity:
//   - Time:  O(N + L + G + D) for N buses, L lines, G generators, D loads.
//   - Space: O(N + L) for dense per-bus arrays and adjacency.

package grid

import (
	"fmt"
	"sort"
)

const opNew = "grid.New"

// Network is an immutable, validated steady-state network model.
// Construct it with New; the zero value is not usable.
type Network struct {
	n     int
	names []string
	lines []Line
	gens  []Generator // sorted by bus, unique per bus
	loads []Load      // sorted by bus, unique per bus
	ref   int         // resolved 1-based reference bus

	pmax []float64 // dense by bus-1; zero where no generator
	cost []float64 // dense by bus-1; zero where no generator
	load []float64 // dense by bus-1; zero where no load
	adj  [][]int   // 0-based adjacency over the undirected line graph
}

// New validates the full network description and freezes it.
//
// Steps:
//  1. Frame checks: bus count, name coverage.
//  2. Line checks: bus ranges, no self-loops, x > 0, r ≥ 0.
//  3. Generator checks: bus range, uniqueness per bus, PMax ≥ 0, Cost ≥ 0.
//  4. Load checks: bus range, uniqueness per bus, P ≥ 0.
//  5. Resolve the reference bus (explicit option or lowest generator bus).
//  6. Build dense per-bus arrays and the adjacency index.
//
// Any violation returns immediately with a wrapped sentinel naming the
// offending entity; the network is never partially constructed.
func New(buses int, lines []Line, gens []Generator, loads []Load, opts ...Option) (*Network, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Frame: at least one bus, names either absent or covering all buses.
	if buses < 1 {
		return nil, fmt.Errorf("%s: buses=%d: %w", opNew, buses, ErrNoBuses)
	}
	if len(o.names) != 0 && len(o.names) != buses {
		return nil, fmt.Errorf("%s: %d names for %d buses: %w", opNew, len(o.names), buses, ErrBadNames)
	}

	// 2) Lines: endpoints in range and distinct, x > 0, r ≥ 0.
	for i, l := range lines {
		if l.From < 1 || l.From > buses || l.To < 1 || l.To > buses {
			return nil, fmt.Errorf("%s: line %d (%d–%d): %w", opNew, i, l.From, l.To, ErrBusRange)
		}
		if l.From == l.To {
			return nil, fmt.Errorf("%s: line %d at bus %d: %w", opNew, i, l.From, ErrSelfLoop)
		}
		if !(l.Reactance > 0) {
			return nil, fmt.Errorf("%s: line %d (%d–%d) x=%g: %w", opNew, i, l.From, l.To, l.Reactance, ErrReactance)
		}
		if !(l.Resistance >= 0) {
			return nil, fmt.Errorf("%s: line %d (%d–%d) r=%g: %w", opNew, i, l.From, l.To, l.Resistance, ErrResistance)
		}
	}

	// 3) Generators: in range, one per bus, non-negative PMax and cost.
	hasGen := make([]bool, buses)
	for i, g := range gens {
		if g.Bus < 1 || g.Bus > buses {
			return nil, fmt.Errorf("%s: generator %d at bus %d: %w", opNew, i, g.Bus, ErrBusRange)
		}
		if hasGen[g.Bus-1] {
			return nil, fmt.Errorf("%s: bus %d: %w", opNew, g.Bus, ErrDuplicateGenerator)
		}
		hasGen[g.Bus-1] = true
		if !(g.PMax >= 0) {
			return nil, fmt.Errorf("%s: generator at bus %d PMax=%g: %w", opNew, g.Bus, g.PMax, ErrNegativePMax)
		}
		if !(g.Cost >= 0) {
			return nil, fmt.Errorf("%s: generator at bus %d cost=%g: %w", opNew, g.Bus, g.Cost, ErrNegativeCost)
		}
	}

	// 4) Loads: in range, one per bus, non-negative withdrawal.
	hasLoad := make([]bool, buses)
	for i, d := range loads {
		if d.Bus < 1 || d.Bus > buses {
			return nil, fmt.Errorf("%s: load %d at bus %d: %w", opNew, i, d.Bus, ErrBusRange)
		}
		if hasLoad[d.Bus-1] {
			return nil, fmt.Errorf("%s: bus %d: %w", opNew, d.Bus, ErrDuplicateLoad)
		}
		hasLoad[d.Bus-1] = true
		if !(d.P >= 0) {
			return nil, fmt.Errorf("%s: load at bus %d P=%g: %w", opNew, d.Bus, d.P, ErrNegativeLoad)
		}
	}

	// 5) Reference bus: explicit option wins; otherwise the lowest generator bus.
	ref := o.reference
	switch {
	case ref < 0 || ref > buses:
		return nil, fmt.Errorf("%s: reference=%d of %d buses: %w", opNew, ref, buses, ErrBadReference)
	case ref == 0:
		for b := 1; b <= buses; b++ {
			if hasGen[b-1] {
				ref = b
				break
			}
		}
		if ref == 0 {
			return nil, fmt.Errorf("%s: %w", opNew, ErrNoReference)
		}
	}

	// 6) Freeze: copy inputs, sort entities by bus, build dense arrays and adjacency.
	net := &Network{
		n:     buses,
		names: o.names, // already a private copy from WithNames
		lines: append([]Line(nil), lines...),
		gens:  append([]Generator(nil), gens...),
		loads: append([]Load(nil), loads...),
		ref:   ref,
		pmax:  make([]float64, buses),
		cost:  make([]float64, buses),
		load:  make([]float64, buses),
		adj:   make([][]int, buses),
	}
	sort.Slice(net.gens, func(i, j int) bool { return net.gens[i].Bus < net.gens[j].Bus })
	sort.Slice(net.loads, func(i, j int) bool { return net.loads[i].Bus < net.loads[j].Bus })
	for _, g := range net.gens {
		net.pmax[g.Bus-1] = g.PMax
		net.cost[g.Bus-1] = g.Cost
	}
	for _, d := range net.loads {
		net.load[d.Bus-1] = d.P
	}
	for _, l := range net.lines {
		u, v := l.From-1, l.To-1
		net.adj[u] = append(net.adj[u], v)
		net.adj[v] = append(net.adj[v], u)
	}
	return net, nil
}

// N returns the bus count.
func (n *Network) N() int { return n.n }

// Reference returns the resolved 1-based reference (slack) bus.
func (n *Network) Reference() int { return n.ref }

// Name returns the display name of a bus, or "Bus <i>" when none was set.
// Out-of-range indices also fall back to the generated form.
func (n *Network) Name(bus int) string {
	if bus >= 1 && bus <= len(n.names) {
		return n.names[bus-1]
	}
	return fmt.Sprintf("Bus %d", bus)
}

// Lines returns a copy of the line list in declaration order.
func (n *Network) Lines() []Line { return append([]Line(nil), n.lines...) }

// Generators returns a copy of the generator list sorted by bus.
// The position of a generator in this slice is its stable ordinal for
// dispatch vectors.
func (n *Network) Generators() []Generator { return append([]Generator(nil), n.gens...) }

// Loads returns a copy of the load list sorted by bus.
func (n *Network) Loads() []Load { return append([]Load(nil), n.loads...) }

// Injection returns the dense net active-power injection vector:
// Injection[b-1] = PMax(generator at b) − P(load at b).
// This is the DC convention: units enter at their scheduled output and the
// reference bus absorbs any system imbalance.
func (n *Network) Injection() []float64 {
	inj := make([]float64, n.n)
	for i := range inj {
		inj[i] = n.pmax[i] - n.load[i]
	}
	return inj
}

// PMaxByBus returns the dense generator-capacity vector (zero = no unit).
func (n *Network) PMaxByBus() []float64 { return append([]float64(nil), n.pmax...) }

// CostByBus returns the dense marginal-cost vector (zero = no unit).
func (n *Network) CostByBus() []float64 { return append([]float64(nil), n.cost...) }

// LoadByBus returns the dense load vector (zero = no load).
func (n *Network) LoadByBus() []float64 { return append([]float64(nil), n.load...) }

// TotalLoad returns the sum of all load withdrawals.
func (n *Network) TotalLoad() float64 {
	var sum float64
	for _, p := range n.load {
		sum += p
	}
	return sum
}

// TotalPMax returns the sum of all generator capacities.
func (n *Network) TotalPMax() float64 {
	var sum float64
	for _, p := range n.pmax {
		sum += p
	}
	return sum
}
