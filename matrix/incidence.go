// SPDX-License-Identifier: MIT
// Package matrix: signed terminal×connector incidence (dense).
//
// Layout:
//   - Rows follow core.Topology.Terminals() (sorted), columns follow
//     core.Topology.Connectors() (sorted). Both orders are deterministic.
//   - B[i][j] = sign(terminal_i, connector_j), i.e. ±√g, or 0 when not incident.
//   - Laplacian() = B·Bᵀ, the weighted graph Laplacian over terminals.
//
// Complexity:
//   - NewIncidenceMatrix: O(T·C) memory, O(T + C + E) fill.
//   - Laplacian: O(T²·C).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reffgrid/core"
)

// IncidenceMatrix wraps the dense signed incidence of a topology.
type IncidenceMatrix struct {
	Mat            *mat.Dense     // rows=|terminals|, cols=|connectors|
	TerminalIndex  map[string]int // terminal ID → row
	ConnectorIndex map[string]int // connector ID → column
	Terminals      []string       // row order
	Connectors     []string       // column order
}

// NewIncidenceMatrix builds the signed incidence of t.
// Errors: ErrTopologyNil, ErrEmpty (no terminals).
func NewIncidenceMatrix(t *core.Topology) (*IncidenceMatrix, error) {
	if t == nil {
		return nil, fmt.Errorf("NewIncidenceMatrix: %w", ErrTopologyNil)
	}
	terms, conns := t.Terminals(), t.Connectors()
	if len(terms) == 0 {
		return nil, fmt.Errorf("NewIncidenceMatrix: %w", ErrEmpty)
	}

	im := &IncidenceMatrix{
		TerminalIndex:  indexOf(terms),
		ConnectorIndex: indexOf(conns),
		Terminals:      terms,
		Connectors:     conns,
	}
	// gonum rejects zero-sized matrices; a connector-free topology keeps one
	// all-zero column.
	im.Mat = mat.NewDense(len(terms), max(len(conns), 1), nil)
	for j, c := range conns {
		incs, err := t.Incidences(c)
		if err != nil {
			return nil, fmt.Errorf("NewIncidenceMatrix: %w", err)
		}
		for _, inc := range incs {
			im.Mat.Set(im.TerminalIndex[inc.Neighbor], j, inc.Sign)
		}
	}

	return im, nil
}

// TerminalIncidence returns the incidence row of a terminal as a new slice.
// Errors: ErrNilMatrix, ErrUnknownNode.
func (im *IncidenceMatrix) TerminalIncidence(id string) ([]float64, error) {
	if im == nil || im.Mat == nil {
		return nil, fmt.Errorf("TerminalIncidence: %w", ErrNilMatrix)
	}
	row, ok := im.TerminalIndex[id]
	if !ok {
		return nil, fmt.Errorf("TerminalIncidence: %q: %w", id, ErrUnknownNode)
	}

	return mat.Row(nil, row, im.Mat)[:len(im.Connectors)], nil
}

// Laplacian returns B·Bᵀ over the terminals.
// Panics on a nil receiver (developer error).
func (im *IncidenceMatrix) Laplacian() *mat.SymDense {
	if im == nil || im.Mat == nil {
		panic("IncidenceMatrix: nil receiver or Mat")
	}
	n := len(im.Terminals)
	l := mat.NewSymDense(n, nil)
	l.SymOuterK(1, im.Mat)

	return l
}

func indexOf(ids []string) map[string]int {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	return idx
}
