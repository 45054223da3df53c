// SPDX-License-Identifier: MIT
// Package: reffgrid/lanczos
//
// errors.go: sentinel errors for the recurrence engine.
//
// Error policy:
//   • Sentinels only; callers branch with errors.Is.
//   • A missing seed terminal is reported with core.ErrNotFound, wrapped.
//   • Truncation (a zero normalization scalar) is NOT an error: Run returns the
//     shorter sequences with Result.Truncated set.

package lanczos

import "errors"

// ErrNilTopology indicates Run was given a nil topology.
var ErrNilTopology = errors.New("lanczos: nil topology")

// ErrBadSteps indicates a non-positive step count.
var ErrBadSteps = errors.New("lanczos: step count must be positive")

// ErrDegenerateSeed indicates injection and extraction weights that are both zero,
// so the seed vector cannot be normalized.
var ErrDegenerateSeed = errors.New("lanczos: degenerate seed (zero norm)")

// ErrCoincidentTerminals indicates that injection and extraction name the same terminal.
var ErrCoincidentTerminals = errors.New("lanczos: injection and extraction terminals coincide")

// ErrInvalidWeight indicates a NaN or infinite seed weight.
var ErrInvalidWeight = errors.New("lanczos: seed weight must be finite")
