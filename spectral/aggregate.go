// SPDX-License-Identifier: MIT
// Package: reffgrid/spectral
//
// aggregate.go: coefficients, cumulative approximation and estimates.
//
// Indexing (0-based pair index m):
//   • Kappa[0] = w / Betas[1]
//   • Kappa[m] = −Kappa[m-1] · Betas[2m] / Betas[2m+1]
//   • Psi[m]   = Psi[m-1] + Kappa[m] · Snapshots[2m+1]
//   • Cum[m]   = Σ_{j≤m} Kappa[j]²
//   • R[m]     = 1 / Cum[m]
//
// The coefficient product is carried forward one factor at a time; nothing is
// recomputed from the start of the sequence.

package spectral

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/reffgrid/lanczos"
)

// Estimate bundles every derived sequence of one recurrence result.
type Estimate struct {
	Kappas                 []float64
	Psi                    []lanczos.Snapshot
	CumulativeSquaredNorms []float64
	EffectiveResistances   []float64

	// Truncated is set when a zero beta cut the coefficient sequence short.
	Truncated bool
}

// Orders returns the number of truncation orders.
func (e *Estimate) Orders() int { return len(e.Kappas) }

// Final returns the highest-order estimate, or +Inf when there is none.
func (e *Estimate) Final() float64 {
	if len(e.EffectiveResistances) == 0 {
		return math.Inf(1)
	}

	return e.EffectiveResistances[len(e.EffectiveResistances)-1]
}

// Kappa derives the alternating coefficients, one per step pair.
//
// Errors:
//   - ErrInvalidBeta for a negative, NaN or infinite beta.
//   - ErrTruncated, with the coefficients before the zero beta, when a beta
//     entering the product is zero.
func Kappa(betas []float64, injectWeight float64) ([]float64, error) {
	for i, b := range betas {
		if !(b >= 0) || math.IsInf(b, 0) {
			return nil, fmt.Errorf("Kappa: betas[%d]=%v: %w", i, b, ErrInvalidBeta)
		}
	}
	n := len(betas) / 2
	out := make([]float64, 0, n)
	for m := 0; m < n; m++ {
		den := betas[2*m+1]
		if den == 0 {
			return out, fmt.Errorf("Kappa: order %d: betas[%d]=0: %w", m, 2*m+1, ErrTruncated)
		}
		if m == 0 {
			out = append(out, injectWeight/den)
			continue
		}
		num := betas[2*m]
		if num == 0 {
			return out, fmt.Errorf("Kappa: order %d: betas[%d]=0: %w", m, 2*m, ErrTruncated)
		}
		out = append(out, -out[m-1]*num/den)
	}

	return out, nil
}

// PsiApprox accumulates kappa-weighted odd snapshots. Every order is an
// independent Snapshot; exact zeros are not stored.
//
// Errors:
//   - ErrLengthMismatch if len(snapshots) < 2·len(kappas).
func PsiApprox(snapshots []lanczos.Snapshot, kappas []float64) ([]lanczos.Snapshot, error) {
	if len(snapshots) < 2*len(kappas) {
		return nil, fmt.Errorf("PsiApprox: %d snapshots for %d coefficients: %w",
			len(snapshots), len(kappas), ErrLengthMismatch)
	}
	out := make([]lanczos.Snapshot, len(kappas))
	acc := lanczos.Snapshot{}
	for m, k := range kappas {
		for id, q := range snapshots[2*m+1] {
			v := acc[id] + k*q
			if v == 0 {
				delete(acc, id)
				continue
			}
			acc[id] = v
		}
		out[m] = acc.Clone()
	}

	return out, nil
}

// CumulativeSquaredNorm returns the running sum of kappa².
func CumulativeSquaredNorm(kappas []float64) []float64 {
	sq := make([]float64, len(kappas))
	floats.MulTo(sq, kappas, kappas)
	if len(sq) == 0 {
		return sq
	}

	return floats.CumSum(make([]float64, len(sq)), sq)
}

// EffectiveResistances returns 1/cum[m] for every order. Orders with a zero
// sum hold +Inf and contribute one ErrDivisionByZero to the joined error;
// the other orders stay valid.
func EffectiveResistances(cum []float64) ([]float64, error) {
	out := make([]float64, len(cum))
	var errs []error
	for m, c := range cum {
		if c == 0 {
			out[m] = math.Inf(1)
			errs = append(errs, fmt.Errorf("order %d: %w", m, ErrDivisionByZero))
			continue
		}
		out[m] = 1 / c
	}

	return out, errors.Join(errs...)
}

// Aggregate derives every sequence from a recurrence result. A coefficient
// truncation is recorded in Estimate.Truncated rather than returned; a
// division by zero is returned alongside the complete Estimate.
func Aggregate(res *lanczos.Result, injectWeight float64) (*Estimate, error) {
	if res == nil {
		return nil, fmt.Errorf("Aggregate: nil result: %w", ErrLengthMismatch)
	}
	kappas, err := Kappa(res.Betas, injectWeight)
	est := &Estimate{Kappas: kappas}
	switch {
	case errors.Is(err, ErrTruncated):
		est.Truncated = true
	case err != nil:
		return nil, fmt.Errorf("Aggregate: %w", err)
	}

	if est.Psi, err = PsiApprox(res.Snapshots, kappas); err != nil {
		return nil, fmt.Errorf("Aggregate: %w", err)
	}
	est.CumulativeSquaredNorms = CumulativeSquaredNorm(kappas)
	est.EffectiveResistances, err = EffectiveResistances(est.CumulativeSquaredNorms)
	if err != nil {
		return est, fmt.Errorf("Aggregate: %w", err)
	}

	return est, nil
}
