// Package core provides the bipartite terminal/connector topology that the
// effective-resistance engine walks.
//
// A Topology T = (N ∪ L, E) has two disjoint node classes:
//
//   - Terminals (N): injection/extraction points of the network (buses).
//   - Connectors (L): one node per physical link (line), joined to exactly two
//     terminals when the link is created.
//
// Every edge joins a terminal to a connector and carries a signed magnitude.
// For a connector with conductance g between terminals (a, b) the incidences are
//
//	sign(a, ℓ) = +√g    sign(b, ℓ) = −√g
//
// so the signed sum over a connector's two edges encodes flow conservation.
// No edge ever joins two terminals or two connectors.
//
// Values and editing:
//
//   - *Topology is an immutable snapshot. All getters are safe for concurrent use
//     and return copies, so a recurrence run can never observe a mutation.
//   - *Editor produces the next Topology. It is copy-on-write: the first mutation
//     after Edit() (or after Topology()) clones the current state, so previously
//     published snapshots stay untouched.
//
// Removal:
//
//	Remove(kind, id) deletes one terminal or connector and its incident edges.
//	Unknown ids fail with ErrNotFound; removal is never a silent no-op.
//	Removing a terminal leaves its connectors in place with degree 1 or 0; their
//	contribution to the recurrence vanishes naturally.
//
// Determinism:
//
//	Terminals(), Connectors(), Neighbors() and Incidences() return results sorted
//	by ID, so any computation that folds over them is reproducible bit for bit.
//
// Complexity:
//
//	Getters are O(1) or O(d) in the node degree d (incidence lists are sorted once
//	when a snapshot is sealed). Editor mutations are O(d) plus an O(V+E) clone on the
//	first mutation after a snapshot is published.
package core
