// Package grid models a steady-state electrical network: buses, lines,
// generators, and loads, validated once and immutable afterwards.
//
// What:
//
//   - Network is built by New from plain slices; buses are dense integer
//     indices 1..N, entities reference buses by index.
//   - Every structural rule is enforced at construction: bus ranges,
//     positive reactances, one generator and one load per bus, a single
//     well-defined reference (slack) bus.
//   - Per-bus quantities (injection, PMax, cost, load) are exposed as dense
//     arrays indexed by bus−1; a zero entry means "nothing at this bus".
//   - Unreachable/CheckConnected report buses with no line path to the
//     reference bus, the one structural condition solvers must re-check.
//
// Why:
//
//   - Power-flow and dispatch solvers want a model they can trust: if New
//     returned it, the only remaining failure modes are numerical.
//   - One reference-bus rule shared by every solver: the explicit
//     WithReference option wins, otherwise the lowest-index generator bus.
//
// Conventions:
//
//   - Lines are undirected for connectivity; flow sign is positive From→To.
//   - Parallel lines between the same pair of buses are legal; downstream
//     susceptances accumulate additively.
//   - Generator PMax doubles as the scheduled DC injection and the LOPF
//     dispatch upper bound.
//
// Complexity:
//
//   - New:          O(N + L + G + D) time and memory.
//   - Unreachable:  O(N + L) BFS over the line graph.
//
// Errors:
//
//   - ErrNoBuses, ErrBadNames: malformed network frame.
//   - ErrBusRange, ErrSelfLoop, ErrReactance, ErrResistance: bad line data.
//   - ErrDuplicateGenerator, ErrDuplicateLoad: more than one entity per bus.
//   - ErrNegativePMax, ErrNegativeCost, ErrNegativeLoad: negative quantities.
//   - ErrBadReference, ErrNoReference: reference-bus rule cannot resolve.
//   - ErrDisconnected (via DisconnectedError): buses unreachable from the
//     reference; the typed error carries the stranded bus list.
package grid
