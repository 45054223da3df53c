// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy used by the copy-on-write Editor.
// Notes:
//   - Node records are never mutated after insertion, so the clone shares the
//     *Terminal / *Connector pointers and copies only the maps.

package core

// clone returns an unsealed deep copy of the catalogs and adjacency.
// Complexity: O(V + E).
func (t *Topology) clone() *Topology {
	c := &Topology{
		terminals:  make(map[string]*Terminal, len(t.terminals)),
		connectors: make(map[string]*Connector, len(t.connectors)),
		adjacency:  make(map[string]map[string]float64, len(t.adjacency)),
		edges:      t.edges,
	}
	for id, n := range t.terminals {
		c.terminals[id] = n
	}
	for id, l := range t.connectors {
		c.connectors[id] = l
	}
	for id, nb := range t.adjacency {
		m := make(map[string]float64, len(nb))
		for v, s := range nb {
			m[v] = s
		}
		c.adjacency[id] = m
	}

	return c
}
