// SPDX-License-Identifier: MIT
// Package: lvlgrid/gridgen
//
// random.go - seeded synthetic network generation.
//
// Contract:
//   - The draw order is fixed (chain, chords, loads, units), so a seed
//     fully determines the network; changing the order is a breaking
//     change for every golden benchmark built on top.
//   - The chain keeps the network connected regardless of the chords;
//     chords may duplicate chain edges, which the susceptance builder
//     accumulates as parallel lines.

package gridgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlgrid/grid"
)

// ErrBusCount indicates a request for fewer than two buses.
var ErrBusCount = errors.New("gridgen: need at least 2 buses")

const (
	lineRes      = 0.01 // Ω, uniform across generated lines
	loadProb     = 0.7
	unitPrice    = 20.0 // $/MWh, shared by every generated unit
	slackMargin  = 1.1  // bus-1 unit size relative to total load
	unitSpacing  = 4    // every fourth bus from 2 hosts a local unit
	fallbackLoad = 200.0
)

// Random returns a connected n-bus network drawn from the given seed.
//
// Steps:
//  1. Chain lines 1–2 … (n−1)–n with x ∈ [0.05, 0.5).
//  2. max(1, n/3) random chords u–v, u < v, same reactance range.
//  3. Loads on buses 2..n with probability 0.7, P ∈ [50, 500) MW;
//     a 200 MW fallback on bus 2 if none was drawn.
//  4. A slack-sized unit on bus 1 (110% of total load) plus local units
//     on buses 2, 6, 10, … sized at half the local load plus 50 MW.
func Random(n int, seed int64) (*grid.Network, error) {
	if n < 2 {
		return nil, fmt.Errorf("gridgen.Random: n=%d: %w", n, ErrBusCount)
	}
	rng := rand.New(rand.NewSource(seed))

	// 1) Spanning chain.
	chords := n / 3
	if chords < 1 {
		chords = 1
	}
	lines := make([]grid.Line, 0, n-1+chords)
	for i := 1; i < n; i++ {
		lines = append(lines, grid.Line{
			From:       i,
			To:         i + 1,
			Reactance:  0.05 + rng.Float64()*0.45,
			Resistance: lineRes,
		})
	}

	// 2) Mesh chords.
	for k := 0; k < chords; k++ {
		u := 1 + rng.Intn(n-1)
		v := u + 1 + rng.Intn(n-u)
		lines = append(lines, grid.Line{
			From:       u,
			To:         v,
			Reactance:  0.05 + rng.Float64()*0.45,
			Resistance: lineRes,
		})
	}

	// 3) Loads.
	var loads []grid.Load
	var total float64
	for bus := 2; bus <= n; bus++ {
		if rng.Float64() < loadProb {
			p := 50 + rng.Float64()*450
			loads = append(loads, grid.Load{Bus: bus, P: p})
			total += p
		}
	}
	if len(loads) == 0 {
		loads = append(loads, grid.Load{Bus: 2, P: fallbackLoad})
		total = fallbackLoad
	}
	loadAt := make(map[int]float64, len(loads))
	for _, l := range loads {
		loadAt[l.Bus] = l.P
	}

	// 4) Units: adequacy comes from the bus-1 margin alone.
	gens := []grid.Generator{{Bus: 1, PMax: total * slackMargin, Cost: unitPrice}}
	for bus := 2; bus <= n; bus += unitSpacing {
		gens = append(gens, grid.Generator{
			Bus:  bus,
			PMax: loadAt[bus]*0.5 + 50,
			Cost: unitPrice,
		})
	}

	net, err := grid.New(n, lines, gens, loads)
	if err != nil {
		return nil, fmt.Errorf("gridgen.Random: %w", err)
	}
	return net, nil
}
