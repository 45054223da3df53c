// SPDX-License-Identifier: MIT
// Package: reffgrid/reff
//
// estimator.go: recurrence → aggregation pipeline.
//
// Contract:
//   • One Estimate call is one run: a fresh uuid, one lanczos.Run, one
//     spectral.Aggregate, one bfs reachability check, an optional
//     series-path bound and optional dense diagnostics. The topology is
//     never modified.
//   • A division by zero in the estimates is returned together with the
//     complete Report; every other error returns a nil Report.
//   • An Estimator holds no per-run state and is safe for concurrent use.

package reff

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/reffgrid/bfs"
	"github.com/katalvlaran/reffgrid/core"
	"github.com/katalvlaran/reffgrid/dijkstra"
	"github.com/katalvlaran/reffgrid/lanczos"
	"github.com/katalvlaran/reffgrid/matrix"
	"github.com/katalvlaran/reffgrid/metrics"
	"github.com/katalvlaran/reffgrid/spectral"
)

const methodEstimate = "Estimate"

// Estimator runs effective-resistance estimations with fixed Settings.
type Estimator struct {
	settings Settings
	logger   zerolog.Logger
	metrics  *metrics.Registry
}

// Option customizes an Estimator.
type Option func(*Estimator)

// WithLogger sets the logger; runs log at info, steps at debug.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Estimator) { e.logger = l }
}

// WithMetrics records every run and step into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(e *Estimator) { e.metrics = r }
}

// New validates s and returns an Estimator. Without WithLogger it is silent.
func New(s Settings, opts ...Option) (*Estimator, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	e := &Estimator{settings: s, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// NewFromConfig reads c and logs through c.CreateLogger unless a later
// WithLogger overrides it.
func NewFromConfig(c *Config, opts ...Option) (*Estimator, error) {
	s, err := c.Settings()
	if err != nil {
		return nil, fmt.Errorf("NewFromConfig: %w", err)
	}

	return New(s, append([]Option{WithLogger(c.CreateLogger())}, opts...)...)
}

// Settings returns the settings the Estimator was built with.
func (e *Estimator) Settings() Settings { return e.settings }

// Estimate runs between the configured run.inject and run.extract terminals.
//
// Errors:
//   - ErrInvalidConfig if either terminal is not configured.
//   - See EstimatePair.
func (e *Estimator) Estimate(ctx context.Context, t *core.Topology) (*Report, error) {
	if e.settings.Inject == "" || e.settings.Extract == "" {
		return nil, fmt.Errorf("%s: seed terminals not configured: %w", methodEstimate, ErrInvalidConfig)
	}

	return e.EstimatePair(ctx, t, e.settings.Inject, e.settings.Extract)
}

// EstimatePair runs between inject and extract with the configured weights.
//
// Errors:
//   - lanczos errors (ErrNilTopology, ErrBadSteps, seed errors,
//     core.ErrNotFound) and ctx errors, with a nil Report.
//   - spectral.ErrDivisionByZero, joined per order, with the full Report.
//   - matrix errors from diagnostics, with a nil Report.
func (e *Estimator) EstimatePair(ctx context.Context, t *core.Topology, inject, extract string) (*Report, error) {
	start := time.Now()
	rep := &Report{
		RunID: uuid.New(),
		Seed: lanczos.Seed{
			Inject:        inject,
			Extract:       extract,
			InjectWeight:  e.settings.InjectWeight,
			ExtractWeight: e.settings.ExtractWeight,
		},
		Steps: e.settings.Steps,
	}
	if rep.Steps == 0 {
		rep.Steps = lanczos.DefaultSteps(t)
	}
	log := e.logger.With().Str("run_id", rep.RunID.String()).Logger()
	log.Info().Str("inject", inject).Str("extract", extract).Int("steps", rep.Steps).Msg("estimation started")

	res, err := lanczos.Run(t, rep.Steps, rep.Seed, e.runOptions(ctx, log)...)
	if err != nil {
		return nil, e.fail(log, start, err)
	}
	rep.Snapshots, rep.Betas = res.Snapshots, res.Betas

	est, aggErr := spectral.Aggregate(res, rep.Seed.InjectWeight)
	if est == nil {
		return nil, e.fail(log, start, aggErr)
	}
	if aggErr != nil {
		log.Warn().Err(aggErr).Msg("estimate undefined at some orders")
		aggErr = fmt.Errorf("%s: %w", methodEstimate, aggErr)
	}
	rep.Kappas = est.Kappas
	rep.Psi = est.Psi
	rep.CumulativeSquaredNorms = est.CumulativeSquaredNorms
	rep.EffectiveResistances = est.EffectiveResistances
	rep.Truncated = res.Truncated || est.Truncated

	if rep.Connected, err = bfs.Reachable(t, inject, extract); err != nil {
		return nil, e.fail(log, start, err)
	}
	if !rep.Connected {
		// No current flows between the seeds, so no order carries an estimate.
		rep.Kappas = []float64{}
		rep.Psi = []lanczos.Snapshot{}
		rep.CumulativeSquaredNorms = []float64{}
		rep.EffectiveResistances = []float64{}
		log.Warn().Msg("seed terminals are not connected")
		if e.metrics != nil {
			e.metrics.RecordDisconnected()
		}
	}

	if e.settings.SeriesBound {
		if rep.SeriesResistance, rep.SeriesPath, err = dijkstra.SeriesResistance(t, inject, extract); err != nil {
			return nil, e.fail(log, start, err)
		}
	}

	if e.settings.Diagnostics {
		d, err := diagnose(t, res)
		if err != nil {
			return nil, e.fail(log, start, err)
		}
		rep.Diagnostics = &d
		log.Debug().Float64("orthogonality_loss", d.OrthogonalityLoss).Float64("residual", d.Residual).Msg("diagnostics")
	}

	rep.Elapsed = time.Since(start)
	if e.metrics != nil {
		e.metrics.RecordRun(metrics.StatusOK, rep.Elapsed, len(rep.Betas), rep.Orders(), rep.Truncated, rep.Resistance())
	}
	log.Info().
		Int("produced", len(rep.Betas)).
		Int("orders", rep.Orders()).
		Bool("truncated", rep.Truncated).
		Bool("connected", rep.Connected).
		Float64("resistance", rep.Resistance()).
		Float64("series_bound", rep.SeriesResistance).
		Dur("elapsed", rep.Elapsed).
		Msg("estimation finished")

	return rep, aggErr
}

func (e *Estimator) runOptions(ctx context.Context, log zerolog.Logger) []lanczos.Option {
	opts := []lanczos.Option{
		lanczos.WithContext(ctx),
		lanczos.WithWorkers(e.settings.Workers),
		lanczos.WithParallelThreshold(e.settings.ParallelThreshold),
		lanczos.WithBreakdownTolerance(e.settings.BreakdownTolerance),
		lanczos.WithLogger(log),
	}
	if e.metrics != nil {
		opts = append(opts, lanczos.WithStepHook(func(_ int, beta float64, support int) {
			e.metrics.RecordStep(beta, support)
		}))
	}

	return opts
}

func (e *Estimator) fail(log zerolog.Logger, start time.Time, err error) error {
	elapsed := time.Since(start)
	if e.metrics != nil {
		e.metrics.RecordRun(metrics.StatusError, elapsed, 0, 0, false, 0)
	}
	log.Error().Err(err).Dur("elapsed", elapsed).Msg("estimation failed")

	return fmt.Errorf("%s: %w", methodEstimate, err)
}

func diagnose(t *core.Topology, res *lanczos.Result) (matrix.Diagnostics, error) {
	op, err := matrix.NewOperator(t)
	if err != nil {
		return matrix.Diagnostics{}, err
	}

	return matrix.Diagnose(op, res)
}
