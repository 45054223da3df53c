// Package dijkstra finds least series-resistance paths between terminals of a
// core.Topology.
//
// Overview:
//
//   - Dijkstra(t, Source(id), ...) settles terminals in order of increasing
//     resistance Σ 1/g over the lines walked, using a lazy min-heap.
//   - SeriesResistance(t, a, b) returns the cheapest a→b resistance with its
//     alternating terminal/connector path.
//
// Why it is here:
//
//	By Rayleigh monotonicity the resistance of any one path is an upper bound
//	on the effective resistance between its ends, so the reff pipeline reports
//	it next to the spectral estimate as a sanity bound.
//
// Options:
//
//   - Target(id): stop once id is settled.
//   - WithReturnPath(): return the predecessor map.
//   - WithMaxResistance(x): do not settle terminals beyond x (x ≥ 0).
//
// Errors:
//
//   - ErrEmptySource, ErrNilTopology.
//   - core.ErrNotFound when Source or Target is not a terminal.
//
// Complexity: O((T + E) log T) time, O(T + C) memory.
package dijkstra
