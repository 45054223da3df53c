// Package bfs provides breadth-first search over a core.Topology,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from one or more sources.
//   - Terminals and connectors are both nodes: two terminals joined by one
//     connector are two hops apart.
//   - Returns a BFSResult containing Order, Depth and Parent.
//   - Honors MaxDepth (d>0), neighbor filtering and a visit hook that may abort.
//
// Why
//
//   - Reachability checks between an injection and an extraction terminal.
//   - Locality bounds: after k recurrence steps, every non-zero entry of the
//     propagated vector lies within k hops of a seed terminal.
//
// Determinism
//
//	core.Topology.Neighbors returns IDs sorted ascending and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(topo, "N_0_0", bfs.WithMaxDepth(4))
//	dist, err := bfs.Distances(topo, "N_0_0", "N_2_2")
//	ok, err := bfs.Reachable(topo, "N_0_0", "N_2_2")
//
// Errors
//
//   - ErrTopologyNil      if the topology pointer is nil.
//   - ErrStartNotFound    if a source does not exist.
//   - ErrNoSources        if Multi gets an empty source list.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped hook errors from OnVisit, or the context error on cancellation.
package bfs
