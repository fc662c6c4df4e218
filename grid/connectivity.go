// SPDX-License-Identifier: MIT
// Package: lvlgrid/grid
//
// connectivity.go - reachability from the reference bus.

package grid

// Unreachable returns the buses with no line path to the reference bus,
// as ascending 1-based indices. An empty result means the network is
// connected and therefore solvable.
//
// Time: O(N + L). Memory: O(N).
func (n *Network) Unreachable() []int {
	seen := make([]bool, n.n)
	queue := []int{n.ref - 1}
	seen[n.ref-1] = true
	// BFS over the undirected line graph.
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range n.adj[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	var missing []int
	for i := 0; i < n.n; i++ {
		if !seen[i] {
			missing = append(missing, i+1)
		}
	}
	return missing
}

// CheckConnected reports stranded buses as a *DisconnectedError
// (errors.Is-matchable against ErrDisconnected), or nil when every bus can
// reach the reference. Solvers call this before any matrix work so that a
// structurally singular system surfaces as a configuration error, not as a
// failed factorization.
func (n *Network) CheckConnected() error {
	if missing := n.Unreachable(); len(missing) > 0 {
		return &DisconnectedError{Buses: missing}
	}
	return nil
}
