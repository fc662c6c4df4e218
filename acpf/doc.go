// Package acpf owns the data contract with external nonlinear AC
// power-flow engines.
//
// What (semantics)?
//   - The repo solves linear problems only; full AC power flow runs in an
//     external engine. This package converts a grid.Network into the
//     per-unit Case such engines consume, and converts their Solution
//     back into megawatt quantities.
//   - Per-unit contract with SBase (MVA) and VNom (kV):
//     ZBase = VNom²/SBase, r_pu = r/ZBase, x_pu = x/ZBase, p_pu = P/SBase.
//     The inverse mapping (×SBase) recovers MW from engine output.
//   - Bus typing follows the reference rule of grid: the reference bus
//     exports as Slack, remaining generator buses as PV, all others as PQ.
//   - A non-converged engine report stays data: Solution carries
//     Converged=false plus whatever diagnostics the engine supplied, and
//     the MW converters refuse it rather than fabricate numbers.
//
// Why use it?
//   - One verified conversion instead of per-engine ad hoc scaling; the
//     linear solvers and the AC boundary share bus and line ordering, so
//     results line up index-for-index.
//   - CompareFlows reports where an AC solution departs from the linear
//     approximation. Mismatches are diagnostics, never errors.
//
// Options (FromNetwork):
//   - WithVoltageBand(min, max) — per-bus magnitude band, default 0.9..1.1;
//   - WithPowerFactor(pf)       — constant load power factor, default 1
//     (purely active demand);
//   - WithVoltageSetpoint(v)    — generator magnitude setpoint, default 1.
//
// Errors:
//   - ErrNilNetwork, ErrBase, ErrVoltageBand, ErrPowerFactor, ErrSetpoint —
//     invalid export inputs;
//   - ErrNotConverged, ErrDimension — unusable engine solutions.
package acpf
