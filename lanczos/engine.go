// SPDX-License-Identifier: MIT
// Package: reffgrid/lanczos
//
// engine.go: the signed three-term recurrence.
//
// Indexing (0-based, every slice):
//   • Betas[0] = ‖seed‖, Snapshots[0] = seed / Betas[0].
//   • For k ≥ 1:
//       candidates = N(support(S[k-1])) ∪ support(S[k-2])
//       w(v)       = Σ_u sign(v,u)·S[k-1][u] − Betas[k-1]·S[k-2][v]
//       Betas[k]   = ‖w‖₂,  S[k] = w / Betas[k]
//   • A zero Betas[k] stops the run and the sequences returned have length k.
//     "Zero" is ‖w‖ ≤ tol·(‖H·S[k-1]‖ + Betas[k-1]), tol from
//     WithBreakdownTolerance; exhaustion is never exact in floating point.
//
// The operator has a zero diagonal on a bipartite graph, so S[k] alternates
// between terminal and connector support and no α term is needed.
//
// Concurrency:
//   • Steps are strictly sequential. Within a step, candidates are evaluated
//     independently; with WithWorkers(n>1) and enough candidates they are
//     split across an errgroup, each worker writing its own slice range.
//
// Complexity per step: O(Σ_{v∈candidates} deg(v) + |candidates| log |candidates|).

package lanczos

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/reffgrid/core"
)

const methodRun = "Run"

// Seed designates the injection and extraction terminals and their signed weights.
type Seed struct {
	Inject        string
	Extract       string
	InjectWeight  float64
	ExtractWeight float64
}

// UnitSeed injects +1 at inject and extracts −1 at extract.
func UnitSeed(inject, extract string) Seed {
	return Seed{Inject: inject, Extract: extract, InjectWeight: 1, ExtractWeight: -1}
}

// Result holds the recurrence output. len(Snapshots) == len(Betas) ≤ Requested.
type Result struct {
	Snapshots []Snapshot
	Betas     []float64
	Requested int
	Truncated bool
}

// Len returns the number of produced steps.
func (r *Result) Len() int { return len(r.Betas) }

// DefaultSteps returns the customary step bound: twice the terminal count.
func DefaultSteps(t *core.Topology) int {
	if t == nil {
		return 0
	}

	return 2 * t.TerminalCount()
}

// Run executes up to steps recurrence steps on t from seed.
//
// Errors:
//   - ErrNilTopology, ErrBadSteps for invalid arguments.
//   - ErrInvalidWeight, ErrCoincidentTerminals, ErrDegenerateSeed for a bad seed.
//   - core.ErrNotFound if a seed ID is not a terminal of t.
//   - The context error if WithContext's context is done between steps.
func Run(t *core.Topology, steps int, seed Seed, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", methodRun, ErrNilTopology)
	}
	if steps < 1 {
		return nil, fmt.Errorf("%s: steps=%d: %w", methodRun, steps, ErrBadSteps)
	}
	first, beta0, err := seedSnapshot(t, seed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}
	cfg := newRunConfig(opts...)
	log := cfg.logger.With().Str("component", "lanczos").Logger()

	res := &Result{
		Snapshots: make([]Snapshot, 0, steps),
		Betas:     make([]float64, 0, steps),
		Requested: steps,
	}
	res.record(cfg, log, first, beta0)

	for k := 1; k < steps; k++ {
		if err := cfg.ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", methodRun, k, err)
		}
		var prev2 Snapshot
		if k >= 2 {
			prev2 = res.Snapshots[k-2]
		}
		next, beta, err := step(cfg, t, res.Snapshots[k-1], prev2, res.Betas[k-1])
		if err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", methodRun, k, err)
		}
		if beta == 0 {
			res.Truncated = true
			log.Debug().Int("step", k).Msg("krylov subspace exhausted")
			break
		}
		res.record(cfg, log, next, beta)
	}

	return res, nil
}

func (r *Result) record(cfg runConfig, log zerolog.Logger, s Snapshot, beta float64) {
	k := len(r.Betas)
	r.Snapshots = append(r.Snapshots, s)
	r.Betas = append(r.Betas, beta)
	log.Debug().Int("step", k).Float64("beta", beta).Int("support", len(s)).Msg("step")
	if cfg.hook != nil {
		cfg.hook(k, beta, len(s))
	}
}

// seedSnapshot validates seed and returns the normalized first snapshot.
func seedSnapshot(t *core.Topology, seed Seed) (Snapshot, float64, error) {
	for _, w := range []float64{seed.InjectWeight, seed.ExtractWeight} {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, 0, fmt.Errorf("weight %v: %w", w, ErrInvalidWeight)
		}
	}
	for _, id := range []string{seed.Inject, seed.Extract} {
		if !t.Has(core.KindTerminal, id) {
			return nil, 0, fmt.Errorf("seed terminal %q: %w", id, core.ErrNotFound)
		}
	}
	if seed.Inject == seed.Extract {
		return nil, 0, fmt.Errorf("terminal %q: %w", seed.Inject, ErrCoincidentTerminals)
	}
	beta := math.Hypot(seed.InjectWeight, seed.ExtractWeight)
	if beta == 0 {
		return nil, 0, ErrDegenerateSeed
	}

	s := make(Snapshot, 2)
	if seed.InjectWeight != 0 {
		s[seed.Inject] = seed.InjectWeight / beta
	}
	if seed.ExtractWeight != 0 {
		s[seed.Extract] = seed.ExtractWeight / beta
	}

	return s, beta, nil
}

// step computes one new direction from prev (and prev2 when present).
// A zero beta reports breakdown: ‖w‖ fell to cfg.tol relative to the
// magnitudes it was computed from.
func step(cfg runConfig, t *core.Topology, prev, prev2 Snapshot, beta float64) (Snapshot, float64, error) {
	cand, err := candidates(t, prev, prev2)
	if err != nil {
		return nil, 0, err
	}

	h := make([]float64, len(cand))
	w := make([]float64, len(cand))
	eval := func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			v, err := apply(t, cand[i], prev)
			if err != nil {
				return err
			}
			h[i] = v
			w[i] = v - beta*prev2[cand[i]]
		}
		return nil
	}

	if cfg.workers > 1 && len(cand) >= cfg.threshold {
		g, _ := errgroup.WithContext(cfg.ctx)
		g.SetLimit(cfg.workers)
		chunk := (len(cand) + cfg.workers - 1) / cfg.workers
		for lo := 0; lo < len(cand); lo += chunk {
			lo, hi := lo, min(lo+chunk, len(cand))
			g.Go(func() error { return eval(lo, hi) })
		}
		if err := g.Wait(); err != nil {
			return nil, 0, err
		}
	} else if err := eval(0, len(cand)); err != nil {
		return nil, 0, err
	}

	vals := make([]float64, 0, len(cand))
	next := make(Snapshot, len(cand))
	for i, id := range cand {
		if w[i] != 0 {
			next[id] = w[i]
			vals = append(vals, w[i])
		}
	}
	if len(vals) == 0 {
		return nil, 0, nil
	}
	norm := floats.Norm(vals, 2)
	scale := floats.Norm(h, 2)
	if prev2 != nil {
		scale += beta
	}
	if norm == 0 || norm <= cfg.tol*scale {
		return nil, 0, nil
	}
	for id := range next {
		next[id] /= norm
	}

	return next, norm, nil
}

// candidates returns N(support(prev)) ∪ support(prev2), sorted.
//
// The union with support(prev2) deliberately widens the neighbours-only
// rule: the β·prev2 term can keep an entry alive that H·prev never reaches,
// such as an isolated seed terminal. On any topology where every support node
// has a neighbour the two rules select the same nonzero entries.
func candidates(t *core.Topology, prev, prev2 Snapshot) ([]string, error) {
	set := make(map[string]struct{}, 2*len(prev)+len(prev2))
	for id := range prev {
		nbrs, err := t.Neighbors(id)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			set[v] = struct{}{}
		}
	}
	for id := range prev2 {
		set[id] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out, nil
}

// apply evaluates (H·prev)(v) = Σ_u sign(v,u)·prev[u] over v's sorted incidences.
func apply(t *core.Topology, v string, prev Snapshot) (float64, error) {
	incs, err := t.Incidences(v)
	if err != nil {
		return 0, err
	}
	var h float64
	for _, inc := range incs {
		if x, ok := prev[inc.Neighbor]; ok {
			h += inc.Sign * x
		}
	}

	return h, nil
}
