// SPDX-License-Identifier: MIT
// Package matrix: dense bipartite operator H = [[0, B], [Bᵀ, 0]].
//
// Index layout: terminals (sorted) first, then connectors (sorted). H is
// symmetric with a zero diagonal; H² restricted to terminals is the Laplacian.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reffgrid/core"
)

// Operator is the dense signed adjacency of a topology.
type Operator struct {
	Mat   *mat.SymDense
	Index map[string]int
	IDs   []string
}

// NewOperator builds H for t.
// Errors: ErrTopologyNil, ErrEmpty.
func NewOperator(t *core.Topology) (*Operator, error) {
	im, err := NewIncidenceMatrix(t)
	if err != nil {
		return nil, fmt.Errorf("NewOperator: %w", err)
	}
	nt, nc := len(im.Terminals), len(im.Connectors)
	ids := make([]string, 0, nt+nc)
	ids = append(ids, im.Terminals...)
	ids = append(ids, im.Connectors...)

	h := mat.NewSymDense(nt+nc, nil)
	for i := 0; i < nt; i++ {
		for j := 0; j < nc; j++ {
			if v := im.Mat.At(i, j); v != 0 {
				h.SetSym(i, nt+j, v)
			}
		}
	}

	return &Operator{Mat: h, Index: indexOf(ids), IDs: ids}, nil
}

// Dim returns the number of nodes.
func (op *Operator) Dim() int { return len(op.IDs) }

// Vector embeds a sparse snapshot into a dense vector.
// Errors: ErrNilMatrix, ErrUnknownNode.
func (op *Operator) Vector(s map[string]float64) (*mat.VecDense, error) {
	if op == nil || op.Mat == nil {
		return nil, fmt.Errorf("Vector: %w", ErrNilMatrix)
	}
	v := mat.NewVecDense(op.Dim(), nil)
	for id, w := range s {
		i, ok := op.Index[id]
		if !ok {
			return nil, fmt.Errorf("Vector: %q: %w", id, ErrUnknownNode)
		}
		v.SetVec(i, w)
	}

	return v, nil
}

// Sparse converts a dense vector back to a node map, dropping exact zeros.
func (op *Operator) Sparse(v mat.Vector) map[string]float64 {
	out := make(map[string]float64)
	for i, id := range op.IDs {
		if w := v.AtVec(i); w != 0 {
			out[id] = w
		}
	}

	return out
}

// Apply returns H·s as a node map.
func (op *Operator) Apply(s map[string]float64) (map[string]float64, error) {
	v, err := op.Vector(s)
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}
	var out mat.VecDense
	out.MulVec(op.Mat, v)

	return op.Sparse(&out), nil
}
