// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (wrapped with context) and tests check
// them via errors.Is. User-triggered conditions never panic.

package matrix

import "errors"

var (
	// ErrTopologyNil indicates that a nil *core.Topology was passed into an adapter.
	ErrTopologyNil = errors.New("matrix: topology is nil")

	// ErrUnknownNode indicates a node ID that is not present in the index.
	ErrUnknownNode = errors.New("matrix: unknown node id")

	// ErrNilMatrix indicates that a nil receiver or matrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDimensionMismatch indicates incompatible sequence lengths, e.g. fewer
	// betas than snapshots.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEmpty indicates a topology with no terminals.
	ErrEmpty = errors.New("matrix: empty topology")
)
