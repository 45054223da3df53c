// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node kinds, node records, sentinel errors and the Topology value.
//
// Errors:
//
//	ErrEmptyID         - node ID is the empty string.
//	ErrNotFound        - requested node does not exist (or has the other kind).
//	ErrDuplicateID     - node ID already used by a terminal or a connector.
//	ErrSelfLink        - connector would join a terminal to itself.
//	ErrBadConductance  - connector conductance is not a positive finite number.
//	ErrUnknownKind     - node kind is neither terminal nor connector.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for topology operations.
var (
	// ErrEmptyID indicates that a node was given an empty identifier.
	ErrEmptyID = errors.New("core: node ID is empty")

	// ErrNotFound indicates an operation referenced a node that does not exist.
	ErrNotFound = errors.New("core: node not found")

	// ErrDuplicateID indicates a node ID collides with an existing terminal or connector.
	ErrDuplicateID = errors.New("core: duplicate node ID")

	// ErrSelfLink indicates a connector was asked to join a terminal to itself.
	ErrSelfLink = errors.New("core: connector endpoints must differ")

	// ErrBadConductance indicates a connector conductance that is zero, negative, NaN or infinite.
	ErrBadConductance = errors.New("core: conductance must be positive and finite")

	// ErrUnknownKind indicates a node kind outside {KindTerminal, KindConnector}.
	ErrUnknownKind = errors.New("core: unknown node kind")
)

// NodeKind classifies a node as terminal or connector.
type NodeKind uint8

const (
	// KindTerminal marks an injection/extraction point (bus).
	KindTerminal NodeKind = iota + 1
	// KindConnector marks a physical link (line).
	KindConnector
)

// String returns "terminal", "connector" or "unknown".
func (k NodeKind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindConnector:
		return "connector"
	default:
		return "unknown"
	}
}

// ParseKind maps a textual kind to a NodeKind. It accepts the long names
// ("terminal", "connector") and the single-letter tags used in grid IDs
// ("N" for terminals, "L" for connectors), case-insensitively.
func ParseKind(s string) (NodeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "terminal", "node", "bus":
		return KindTerminal, nil
	case "l", "connector", "line":
		return KindConnector, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
	}
}

// Position is a 2-D coordinate kept for presentation layers only.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Terminal is a bus of the network.
type Terminal struct {
	// ID is unique across terminals and connectors.
	ID string

	// Pos is the drawing position; the recurrence never reads it.
	Pos Position

	// Metadata holds optional tags such as a region or country code.
	Metadata map[string]string
}

// Connector is a line of the network, linking Ends[0] (positive incidence)
// to Ends[1] (negative incidence).
type Connector struct {
	// ID is unique across terminals and connectors.
	ID string

	// Ends are the construction-time endpoints. They are kept after a terminal
	// removal so callers can still tell which link a residual connector was.
	Ends [2]string

	// Conductance is the per-unit conductance g > 0; incidences are ±√g.
	Conductance float64

	// Pos is the drawing position (usually the midpoint of the two ends).
	Pos Position
}

// Incidence is one signed edge seen from one of its endpoints.
type Incidence struct {
	// Neighbor is the node on the other side of the edge.
	Neighbor string

	// Sign is the signed magnitude stored on the (terminal, connector) pair.
	Sign float64
}

// Removal names one node to delete; a list of removals is an edit history.
type Removal struct {
	Kind NodeKind
	ID   string
}

// Topology is an immutable snapshot of the bipartite network.
//
// adjacency[u][v] holds the sign of the edge {u,v}; it is stored on both sides
// and the two entries are always equal. sorted caches the incidence list of each
// node ordered by neighbor ID and is filled when the snapshot is sealed.
type Topology struct {
	terminals  map[string]*Terminal
	connectors map[string]*Connector
	adjacency  map[string]map[string]float64
	sorted     map[string][]Incidence
	edges      int
}

// New returns an empty, sealed Topology.
// Complexity: O(1).
func New() *Topology {
	t := newTopology()
	t.seal()

	return t
}

func newTopology() *Topology {
	return &Topology{
		terminals:  make(map[string]*Terminal),
		connectors: make(map[string]*Connector),
		adjacency:  make(map[string]map[string]float64),
	}
}
