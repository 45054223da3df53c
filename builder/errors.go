// SPDX-License-Identifier: MIT
// Package: reffgrid/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with "%s: ...: %w" using their method tag.
//   • Errors raised by core (ErrDuplicateID, ErrNotFound, ...) are wrapped, not
//     replaced, so errors.Is(err, core.ErrX) keeps working through BuildTopology.

package builder

import "errors"

// ErrTooFewTerminals indicates a size parameter (n, rows, cols) below the minimum.
var ErrTooFewTerminals = errors.New("builder: parameter too small")

// ErrInvalidSpec indicates a topology Spec that fails structural validation
// (missing IDs, negative conductance or length, duplicate entries, ...).
var ErrInvalidSpec = errors.New("builder: invalid topology spec")

// ErrDecode indicates a Spec document that could not be parsed.
var ErrDecode = errors.New("builder: cannot decode topology spec")

// ErrConstructFailed indicates a nil constructor or an unusable base topology.
var ErrConstructFailed = errors.New("builder: construction failed")
