// SPDX-License-Identifier: MIT
// Package: reffgrid/lanczos
//
// snapshot.go: sparse node-weight vectors.
//
// Contract:
//   • A Snapshot stores only non-zero weights; absent keys read as zero.
//   • Every iteration that feeds arithmetic goes through Support(), which is
//     sorted, so floating-point sums are reproducible run to run.

package lanczos

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Snapshot is a sparse mapping from node ID to weight.
type Snapshot map[string]float64

// Get returns the weight of id, or 0 when id is not in the support.
func (s Snapshot) Get(id string) float64 { return s[id] }

// Support returns the IDs with non-zero weight, sorted ascending.
func (s Snapshot) Support() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Values returns the weights in Support order.
func (s Snapshot) Values() []float64 {
	ids := s.Support()
	out := make([]float64, len(ids))
	for i, id := range ids {
		out[i] = s[id]
	}

	return out
}

// Norm returns the Euclidean norm.
func (s Snapshot) Norm() float64 {
	if len(s) == 0 {
		return 0
	}

	return floats.Norm(s.Values(), 2)
}

// Dot returns the inner product with o.
func (s Snapshot) Dot(o Snapshot) float64 {
	a, b := s, o
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for _, id := range a.Support() {
		sum += a[id] * b[id]
	}

	return sum
}

// Clone returns an independent copy.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for id, w := range s {
		out[id] = w
	}

	return out
}
