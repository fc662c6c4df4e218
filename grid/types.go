// SPDX-License-Identifier: MIT
// Package: lvlgrid/grid
//
// types.go - entity types, construction options, and sentinel errors.

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for network construction and connectivity checks.
var (
	// ErrNoBuses indicates a network frame with fewer than one bus.
	ErrNoBuses = errors.New("grid: network needs at least one bus")
	// ErrBadNames indicates a name list that does not cover every bus.
	ErrBadNames = errors.New("grid: names must be empty or cover every bus")
	// ErrBusRange indicates an entity referencing a bus outside 1..N.
	ErrBusRange = errors.New("grid: bus index out of range")
	// ErrSelfLoop indicates a line whose endpoints coincide.
	ErrSelfLoop = errors.New("grid: line endpoints must differ")
	// ErrReactance indicates a non-positive line reactance.
	ErrReactance = errors.New("grid: line reactance must be positive")
	// ErrResistance indicates a negative line resistance.
	ErrResistance = errors.New("grid: line resistance must be non-negative")
	// ErrDuplicateGenerator indicates two generators on one bus.
	ErrDuplicateGenerator = errors.New("grid: at most one generator per bus")
	// ErrDuplicateLoad indicates two loads on one bus.
	ErrDuplicateLoad = errors.New("grid: at most one load per bus")
	// ErrNegativePMax indicates a generator with negative maximum output.
	ErrNegativePMax = errors.New("grid: generator PMax must be non-negative")
	// ErrNegativeCost indicates a generator with negative marginal cost.
	ErrNegativeCost = errors.New("grid: generator cost must be non-negative")
	// ErrNegativeLoad indicates a load withdrawing negative power.
	ErrNegativeLoad = errors.New("grid: load must be non-negative")
	// ErrBadReference indicates an explicit reference bus outside 1..N.
	ErrBadReference = errors.New("grid: reference bus out of range")
	// ErrNoReference indicates the automatic reference rule found no
	// generator bus to fall back on.
	ErrNoReference = errors.New("grid: no explicit reference bus and no generator to infer one from")
	// ErrDisconnected indicates buses with no line path to the reference.
	ErrDisconnected = errors.New("grid: network has buses unreachable from the reference")
)

// Line is a transmission line between two buses.
// From/To are 1-based bus indices; flow sign convention is positive From→To.
// Reactance (x) must be positive; Resistance (r) is optional and only
// consumed by the AC exchange boundary, never by the DC/LOPF path.
type Line struct {
	From, To   int
	Reactance  float64
	Resistance float64
}

// Generator is a dispatchable unit attached to one bus.
// PMax bounds LOPF dispatch and doubles as the scheduled DC injection.
// Cost is the linear marginal cost used by LOPF only.
type Generator struct {
	Bus  int
	PMax float64
	Cost float64
}

// Load is a fixed active-power withdrawal at one bus.
type Load struct {
	Bus int
	P   float64
}

// Option tunes network construction (reference bus, display names).
type Option func(*options)

type options struct {
	reference int
	names     []string
}

// WithReference pins the reference (slack) bus explicitly.
// Without it, the lowest-index generator bus is used.
func WithReference(bus int) Option {
	return func(o *options) { o.reference = bus }
}

// WithNames attaches display names; len(names) must equal the bus count.
// The slice is copied, callers may reuse theirs.
func WithNames(names []string) Option {
	return func(o *options) {
		o.names = make([]string, len(names))
		copy(o.names, names)
	}
}

// DisconnectedError reports buses with no line path to the reference bus.
// It unwraps to ErrDisconnected for errors.Is matching.
type DisconnectedError struct {
	// Buses lists stranded 1-based bus indices in ascending order.
	Buses []int
}

// Error implements the error interface.
func (e *DisconnectedError) Error() string {
	return fmt.Sprintf("grid: buses %v unreachable from the reference", e.Buses)
}

// Unwrap ties the typed error to the ErrDisconnected sentinel.
func (e *DisconnectedError) Unwrap() error { return ErrDisconnected }
