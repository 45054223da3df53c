// SPDX-License-Identifier: MIT
// Package: reffgrid/builder
//
// api.go: public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildTopology(bopts, cons...). Creates an Editor, resolves cfg,
//     runs constructors in order and publishes the sealed snapshot.
//   - Extend does the same on top of an existing snapshot (copy-on-write).
//   - Determinism: same inputs/options and constructor order ⇒ identical topologies.

package builder

import (
	"fmt"

	"github.com/katalvlaran/reffgrid/core"
)

// Constructor emits terminals and connectors into an Editor. Constructors
// validate parameters early, return wrapped sentinel errors and never panic.
type Constructor func(e *core.Editor, cfg builderConfig) error

// BuildTopology resolves the builder options and applies all constructors to
// a fresh Editor.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped as "BuildTopology: %w".
//
// Complexity: Σ cost of each constructor + one O(V + E log d) seal.
func BuildTopology(bopts []BuilderOption, cons ...Constructor) (*core.Topology, error) {
	return apply(core.NewEditor(), "BuildTopology", bopts, cons)
}

// Extend applies constructors on top of base; base is not modified.
//
// Errors:
//   - ErrConstructFailed if base is nil or a constructor is nil.
func Extend(base *core.Topology, bopts []BuilderOption, cons ...Constructor) (*core.Topology, error) {
	if base == nil {
		return nil, fmt.Errorf("Extend: nil base topology: %w", ErrConstructFailed)
	}

	return apply(base.Edit(), "Extend", bopts, cons)
}

func apply(e *core.Editor, method string, bopts []BuilderOption, cons []Constructor) (*core.Topology, error) {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		if err := fn(e, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	return e.Topology(), nil
}
