// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over a sealed Topology.
// Policy:
//   - No mutation here; every returned slice or map is a fresh copy.
//   - Enumerations are sorted by ID.

package core

import (
	"fmt"
	"sort"
)

// Stats is a point-in-time summary of a Topology.
type Stats struct {
	Terminals          int
	Connectors         int
	Edges              int
	IsolatedTerminals  int // terminals with no incident edge
	ResidualConnectors int // connectors left with degree 0 or 1
}

// Kind reports the class of id, or false when id is unknown.
// Complexity: O(1).
func (t *Topology) Kind(id string) (NodeKind, bool) {
	if _, ok := t.terminals[id]; ok {
		return KindTerminal, true
	}
	if _, ok := t.connectors[id]; ok {
		return KindConnector, true
	}

	return 0, false
}

// Has reports whether id names a node of the given kind.
func (t *Topology) Has(kind NodeKind, id string) bool {
	k, ok := t.Kind(id)

	return ok && k == kind
}

// Terminal returns a copy of the terminal with the given ID.
//
// Errors:
//   - ErrNotFound if id is not a terminal.
//
// Complexity: O(m) for the metadata copy.
func (t *Topology) Terminal(id string) (Terminal, error) {
	n, ok := t.terminals[id]
	if !ok {
		return Terminal{}, fmt.Errorf("Terminal(%q): %w", id, ErrNotFound)
	}
	out := *n
	out.Metadata = cloneMetadata(n.Metadata)

	return out, nil
}

// Connector returns a copy of the connector with the given ID.
//
// Errors:
//   - ErrNotFound if id is not a connector.
func (t *Topology) Connector(id string) (Connector, error) {
	c, ok := t.connectors[id]
	if !ok {
		return Connector{}, fmt.Errorf("Connector(%q): %w", id, ErrNotFound)
	}

	return *c, nil
}

// Terminals returns all terminal IDs sorted ascending.
// Complexity: O(N log N).
func (t *Topology) Terminals() []string {
	ids := make([]string, 0, len(t.terminals))
	for id := range t.terminals {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Connectors returns all connector IDs sorted ascending.
// Complexity: O(L log L).
func (t *Topology) Connectors() []string {
	ids := make([]string, 0, len(t.connectors))
	for id := range t.connectors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// TerminalCount returns the number of terminals.
func (t *Topology) TerminalCount() int { return len(t.terminals) }

// ConnectorCount returns the number of connectors.
func (t *Topology) ConnectorCount() int { return len(t.connectors) }

// EdgeCount returns the number of signed edges.
func (t *Topology) EdgeCount() int { return t.edges }

// Stats summarises the topology in one pass.
// Complexity: O(V).
func (t *Topology) Stats() Stats {
	s := Stats{
		Terminals:  len(t.terminals),
		Connectors: len(t.connectors),
		Edges:      t.edges,
	}
	for id := range t.terminals {
		if len(t.adjacency[id]) == 0 {
			s.IsolatedTerminals++
		}
	}
	for id := range t.connectors {
		if len(t.adjacency[id]) < 2 {
			s.ResidualConnectors++
		}
	}

	return s
}

func cloneMetadata(md map[string]string) map[string]string {
	if md == nil {
		return nil
	}
	out := make(map[string]string, len(md))
	for k, v := range md {
		out[k] = v
	}

	return out
}
