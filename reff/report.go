// SPDX-License-Identifier: MIT
// Package: reffgrid/reff
//
// report.go: the outcome of one estimation run.

package reff

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/reffgrid/lanczos"
	"github.com/katalvlaran/reffgrid/matrix"
)

// ErrOutOfRange indicates a snapshot or order index outside a Report.
var ErrOutOfRange = errors.New("reff: index out of range")

// Report carries every sequence produced by one run, indexed as in the
// lanczos and spectral packages.
type Report struct {
	RunID uuid.UUID
	Seed  lanczos.Seed
	Steps int // requested

	Snapshots              []lanczos.Snapshot
	Betas                  []float64
	Kappas                 []float64
	Psi                    []lanczos.Snapshot
	CumulativeSquaredNorms []float64
	EffectiveResistances   []float64

	// Truncated is set when the recurrence or the coefficient product
	// stopped before the requested length.
	Truncated bool
	// Connected reports whether the seed terminals share a component. When it
	// is false the order-indexed sequences are empty and only Snapshots and
	// Betas keep the raw recurrence.
	Connected bool
	Elapsed   time.Duration

	// SeriesResistance is the least single-path resistance between the seed
	// terminals and SeriesPath the path itself. It bounds the effective
	// resistance from above. Zero and nil unless diagnostics.series_bound is
	// set; +Inf and nil for unconnected terminals.
	SeriesResistance float64
	SeriesPath       []string

	// Diagnostics is nil unless diagnostics.enabled is set.
	Diagnostics *matrix.Diagnostics
}

// Resistance returns the highest-order estimate. Unconnected seed terminals
// and runs without any order yield +Inf.
func (r *Report) Resistance() float64 {
	if !r.Connected || len(r.EffectiveResistances) == 0 {
		return math.Inf(1)
	}

	return r.EffectiveResistances[len(r.EffectiveResistances)-1]
}

// Orders returns the number of truncation orders.
func (r *Report) Orders() int { return len(r.EffectiveResistances) }

// SnapshotAt returns a copy of snapshot i.
func (r *Report) SnapshotAt(i int) (lanczos.Snapshot, error) {
	if i < 0 || i >= len(r.Snapshots) {
		return nil, fmt.Errorf("SnapshotAt(%d) of %d: %w", i, len(r.Snapshots), ErrOutOfRange)
	}

	return r.Snapshots[i].Clone(), nil
}

// PsiAt returns a copy of the order-m approximation.
func (r *Report) PsiAt(m int) (lanczos.Snapshot, error) {
	if m < 0 || m >= len(r.Psi) {
		return nil, fmt.Errorf("PsiAt(%d) of %d: %w", m, len(r.Psi), ErrOutOfRange)
	}

	return r.Psi[m].Clone(), nil
}
