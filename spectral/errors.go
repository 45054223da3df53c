// SPDX-License-Identifier: MIT
// Package: reffgrid/spectral
//
// errors.go: sentinel errors for the aggregator.

package spectral

import "errors"

// ErrTruncated marks a zero normalization scalar inside the coefficient
// product. Kappa returns the valid prefix together with this error.
var ErrTruncated = errors.New("spectral: beta sequence truncated")

// ErrInvalidBeta indicates a negative, NaN or infinite normalization scalar.
var ErrInvalidBeta = errors.New("spectral: invalid beta")

// ErrLengthMismatch indicates fewer snapshots than the coefficients require.
var ErrLengthMismatch = errors.New("spectral: snapshot/coefficient length mismatch")

// ErrDivisionByZero marks a truncation order whose cumulative squared norm is zero.
var ErrDivisionByZero = errors.New("spectral: division by zero")
