// SPDX-License-Identifier: MIT
// Package matrix: numerical health checks for a recurrence result.
//
// Both checks are O(n·k) dense work and meant for small and medium networks:
//   - OrthogonalityLoss = max |QᵀQ − I| over the snapshot basis Q.
//   - Residual = max_k ‖H·S[k] − Betas[k]·S[k-1] − Betas[k+1]·S[k+1]‖₂ for
//     every k whose successor exists (S[-1] = 0).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reffgrid/lanczos"
)

// Diagnostics summarizes how well a result satisfies the recurrence.
type Diagnostics struct {
	OrthogonalityLoss float64
	Residual          float64
}

// Diagnose computes both checks for res on op.
func Diagnose(op *Operator, res *lanczos.Result) (Diagnostics, error) {
	if res == nil {
		return Diagnostics{}, fmt.Errorf("Diagnose: nil result: %w", ErrNilMatrix)
	}
	loss, err := OrthogonalityLoss(op, res.Snapshots)
	if err != nil {
		return Diagnostics{}, fmt.Errorf("Diagnose: %w", err)
	}
	r, err := Residual(op, res.Snapshots, res.Betas)
	if err != nil {
		return Diagnostics{}, fmt.Errorf("Diagnose: %w", err)
	}

	return Diagnostics{OrthogonalityLoss: loss, Residual: r}, nil
}

// OrthogonalityLoss returns max |QᵀQ − I|; 0 for no snapshots.
func OrthogonalityLoss(op *Operator, snaps []lanczos.Snapshot) (float64, error) {
	if len(snaps) == 0 {
		return 0, nil
	}
	q, err := basis(op, snaps)
	if err != nil {
		return 0, fmt.Errorf("OrthogonalityLoss: %w", err)
	}
	var g mat.SymDense
	g.SymOuterK(1, q.T())

	var loss float64
	for i := 0; i < len(snaps); i++ {
		for j := 0; j <= i; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			loss = math.Max(loss, math.Abs(g.At(i, j)-want))
		}
	}

	return loss, nil
}

// Residual returns the largest three-term residual norm.
// Errors: ErrDimensionMismatch if len(betas) != len(snaps).
func Residual(op *Operator, snaps []lanczos.Snapshot, betas []float64) (float64, error) {
	if len(betas) != len(snaps) {
		return 0, fmt.Errorf("Residual: %d betas for %d snapshots: %w", len(betas), len(snaps), ErrDimensionMismatch)
	}
	if op == nil || op.Mat == nil {
		return 0, fmt.Errorf("Residual: %w", ErrNilMatrix)
	}
	if len(snaps) < 2 {
		return 0, nil
	}
	vecs := make([]*mat.VecDense, len(snaps))
	for k, s := range snaps {
		v, err := op.Vector(s)
		if err != nil {
			return 0, fmt.Errorf("Residual: step %d: %w", k, err)
		}
		vecs[k] = v
	}

	var worst float64
	r := mat.NewVecDense(op.Dim(), nil)
	for k := 0; k+1 < len(vecs); k++ {
		r.MulVec(op.Mat, vecs[k])
		if k > 0 {
			r.AddScaledVec(r, -betas[k], vecs[k-1])
		}
		r.AddScaledVec(r, -betas[k+1], vecs[k+1])
		worst = math.Max(worst, mat.Norm(r, 2))
	}

	return worst, nil
}

// basis stacks the snapshots as the columns of an n×k matrix.
func basis(op *Operator, snaps []lanczos.Snapshot) (*mat.Dense, error) {
	if op == nil || op.Mat == nil {
		return nil, ErrNilMatrix
	}
	q := mat.NewDense(op.Dim(), len(snaps), nil)
	for k, s := range snaps {
		v, err := op.Vector(s)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", k, err)
		}
		q.SetCol(k, v.RawVector().Data)
	}

	return q, nil
}
