// SPDX-License-Identifier: MIT
//
// File: methods_edit.go
// Role: Copy-on-write Editor producing successive Topology snapshots.
//
// Concurrency:
//   - An Editor is not safe for concurrent use. The snapshots it publishes are.
//   - Publishing (Topology) marks the state as shared; the next mutation clones it.

package core

import (
	"fmt"
	"math"
)

// Editor builds the next Topology value from a base snapshot.
type Editor struct {
	cur    *Topology
	shared bool // cur is referenced by a published snapshot
}

// NewEditor returns an Editor over an empty topology.
func NewEditor() *Editor {
	return &Editor{cur: newTopology()}
}

// Edit returns an Editor whose first mutation clones t; t itself is never modified.
func (t *Topology) Edit() *Editor {
	return &Editor{cur: t, shared: true}
}

// Without returns a new snapshot equal to t minus one node.
//
// Errors:
//   - ErrUnknownKind, ErrEmptyID, ErrNotFound as for Editor.Remove.
func (t *Topology) Without(kind NodeKind, id string) (*Topology, error) {
	e := t.Edit()
	if err := e.Remove(kind, id); err != nil {
		return nil, err
	}

	return e.Topology(), nil
}

// Topology seals and publishes the current state.
// Complexity: O(V + E log d) when the state changed since the last call, O(1) otherwise.
func (e *Editor) Topology() *Topology {
	if !e.shared {
		e.cur.seal()
		e.shared = true
	}

	return e.cur
}

// AddTerminal inserts a terminal.
//
// Errors:
//   - ErrEmptyID if n.ID == "".
//   - ErrDuplicateID if the ID is already used by any node.
//
// Complexity: O(m) for the metadata copy.
func (e *Editor) AddTerminal(n Terminal) error {
	if n.ID == "" {
		return fmt.Errorf("AddTerminal: %w", ErrEmptyID)
	}
	if _, ok := e.cur.Kind(n.ID); ok {
		return fmt.Errorf("AddTerminal(%q): %w", n.ID, ErrDuplicateID)
	}
	t := e.mutable()
	rec := n
	rec.Metadata = cloneMetadata(n.Metadata)
	t.terminals[n.ID] = &rec
	t.adjacency[n.ID] = make(map[string]float64)

	return nil
}

// AddConnector inserts a connector and its two signed edges:
// +√g towards c.Ends[0] and −√g towards c.Ends[1].
//
// Errors:
//   - ErrEmptyID if c.ID or an end is empty.
//   - ErrDuplicateID if c.ID is already used.
//   - ErrSelfLink if both ends name the same terminal.
//   - ErrBadConductance if c.Conductance is not positive and finite.
//   - ErrNotFound if an end is not an existing terminal.
//
// Complexity: O(1).
func (e *Editor) AddConnector(c Connector) error {
	if c.ID == "" || c.Ends[0] == "" || c.Ends[1] == "" {
		return fmt.Errorf("AddConnector(%q): %w", c.ID, ErrEmptyID)
	}
	if _, ok := e.cur.Kind(c.ID); ok {
		return fmt.Errorf("AddConnector(%q): %w", c.ID, ErrDuplicateID)
	}
	if c.Ends[0] == c.Ends[1] {
		return fmt.Errorf("AddConnector(%q): %s: %w", c.ID, c.Ends[0], ErrSelfLink)
	}
	if !(c.Conductance > 0) || math.IsInf(c.Conductance, 0) {
		return fmt.Errorf("AddConnector(%q): g=%v: %w", c.ID, c.Conductance, ErrBadConductance)
	}
	for _, end := range c.Ends {
		if !e.cur.Has(KindTerminal, end) {
			return fmt.Errorf("AddConnector(%q): terminal %q: %w", c.ID, end, ErrNotFound)
		}
	}

	t := e.mutable()
	rec := c
	t.connectors[c.ID] = &rec
	t.adjacency[c.ID] = make(map[string]float64, len(c.Ends))

	mag := math.Sqrt(c.Conductance)
	link(t, c.Ends[0], c.ID, +mag)
	link(t, c.Ends[1], c.ID, -mag)

	return nil
}

// Remove deletes the node and every incident edge. Connectors of a removed
// terminal stay in place with reduced degree.
//
// Errors:
//   - ErrUnknownKind if kind is not KindTerminal or KindConnector.
//   - ErrEmptyID if id == "".
//   - ErrNotFound if id is not a node of that kind.
//
// Complexity: O(d).
func (e *Editor) Remove(kind NodeKind, id string) error {
	if kind != KindTerminal && kind != KindConnector {
		return fmt.Errorf("Remove(%v, %q): %w", kind, id, ErrUnknownKind)
	}
	if id == "" {
		return fmt.Errorf("Remove(%v): %w", kind, ErrEmptyID)
	}
	if !e.cur.Has(kind, id) {
		return fmt.Errorf("Remove(%v, %q): %w", kind, id, ErrNotFound)
	}

	t := e.mutable()
	for v := range t.adjacency[id] {
		delete(t.adjacency[v], id)
		t.edges--
	}
	delete(t.adjacency, id)
	if kind == KindTerminal {
		delete(t.terminals, id)
	} else {
		delete(t.connectors, id)
	}

	return nil
}

// Apply replays a removal history in order and stops at the first failure.
// Removals applied before the failure are kept.
func (e *Editor) Apply(removals ...Removal) error {
	for i, r := range removals {
		if err := e.Remove(r.Kind, r.ID); err != nil {
			return fmt.Errorf("Apply[%d]: %w", i, err)
		}
	}

	return nil
}

// mutable returns a private copy of the state, cloning a published snapshot first.
func (e *Editor) mutable() *Topology {
	if e.shared {
		e.cur = e.cur.clone()
		e.shared = false
	}
	e.cur.sorted = nil

	return e.cur
}

// link stores the signed edge on both endpoints.
func link(t *Topology, terminal, connector string, sign float64) {
	t.adjacency[terminal][connector] = sign
	t.adjacency[connector][terminal] = sign
	t.edges++
}

// Terminal returns the current (possibly unpublished) state of a terminal.
//
// Errors:
//   - ErrNotFound if id is not a terminal.
func (e *Editor) Terminal(id string) (Terminal, error) {
	return e.cur.Terminal(id)
}
