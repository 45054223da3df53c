// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries and signed-edge lookup.
//
// Determinism:
//   - Neighbors() and Incidences() are sorted by neighbor ID; the order is fixed
//     when the snapshot is sealed.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the IDs adjacent to id, sorted ascending. A terminal's
// neighbors are connectors and vice versa.
//
// Errors:
//   - ErrEmptyID if id == "".
//   - ErrNotFound if id is not a node.
//
// Complexity: O(d).
func (t *Topology) Neighbors(id string) ([]string, error) {
	inc, err := t.incidences(id)
	if err != nil {
		return nil, fmt.Errorf("Neighbors: %w", err)
	}
	out := make([]string, len(inc))
	for i, e := range inc {
		out[i] = e.Neighbor
	}

	return out, nil
}

// Incidences returns the signed edges of id, sorted by neighbor ID.
//
// Errors:
//   - ErrEmptyID if id == "".
//   - ErrNotFound if id is not a node.
//
// Complexity: O(d).
func (t *Topology) Incidences(id string) ([]Incidence, error) {
	inc, err := t.incidences(id)
	if err != nil {
		return nil, fmt.Errorf("Incidences: %w", err)
	}

	return append([]Incidence(nil), inc...), nil
}

// Sign returns the signed magnitude of the edge {a,b}. The lookup is symmetric:
// Sign(a,b) == Sign(b,a). ok is false when no such edge exists.
// Complexity: O(1).
func (t *Topology) Sign(a, b string) (sign float64, ok bool) {
	sign, ok = t.adjacency[a][b]

	return sign, ok
}

// Degree returns the number of edges incident to id.
//
// Errors:
//   - ErrNotFound if id is not a node.
func (t *Topology) Degree(id string) (int, error) {
	if _, ok := t.Kind(id); !ok {
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrNotFound)
	}

	return len(t.adjacency[id]), nil
}

func (t *Topology) incidences(id string) ([]Incidence, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if _, ok := t.Kind(id); !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	if t.sorted != nil {
		return t.sorted[id], nil
	}

	return sortedIncidences(t.adjacency[id]), nil
}

// seal freezes the incidence order of every node.
func (t *Topology) seal() {
	t.sorted = make(map[string][]Incidence, len(t.adjacency))
	for id, nb := range t.adjacency {
		t.sorted[id] = sortedIncidences(nb)
	}
}

func sortedIncidences(nb map[string]float64) []Incidence {
	out := make([]Incidence, 0, len(nb))
	for v, s := range nb {
		out = append(out, Incidence{Neighbor: v, Sign: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Neighbor < out[j].Neighbor })

	return out
}
