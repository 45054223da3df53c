// SPDX-License-Identifier: MIT
// Package: reffgrid/lanczos
//
// options.go: functional options for Run.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs (negative workers);
//     Run itself never panics.
//   • Defaults: sequential evaluation, breakdown tolerance 1e-10,
//     zerolog.Nop(), no step hook, background context.

package lanczos

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultParallelThreshold is the candidate-set size from which a step fans
// out across workers.
const DefaultParallelThreshold = 512

// DefaultBreakdownTolerance is the relative size below which a new
// direction is treated as zero and the run stops.
const DefaultBreakdownTolerance = 1e-10

// StepHook observes every produced step: its index, normalization scalar and
// support size.
type StepHook func(step int, beta float64, support int)

// Option customizes a Run.
type Option func(*runConfig)

type runConfig struct {
	ctx       context.Context
	workers   int
	threshold int
	tol       float64
	logger    zerolog.Logger
	hook      StepHook
}

func newRunConfig(opts ...Option) runConfig {
	cfg := runConfig{
		ctx:       context.Background(),
		workers:   1,
		threshold: DefaultParallelThreshold,
		tol:       DefaultBreakdownTolerance,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers sets how many goroutines evaluate candidates within one step.
// 0 and 1 both mean sequential. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("lanczos: WithWorkers(%d)", n))
	}
	if n == 0 {
		n = 1
	}
	return func(c *runConfig) { c.workers = n }
}

// WithParallelThreshold sets the minimum candidate count for fan-out.
// Panics if n < 1.
func WithParallelThreshold(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("lanczos: WithParallelThreshold(%d)", n))
	}
	return func(c *runConfig) { c.threshold = n }
}

// WithBreakdownTolerance sets the relative breakdown threshold. 0 means a
// step stops only when its direction is exactly zero. Panics if tol is
// negative or NaN.
func WithBreakdownTolerance(tol float64) Option {
	if !(tol >= 0) {
		panic(fmt.Sprintf("lanczos: WithBreakdownTolerance(%v)", tol))
	}
	return func(c *runConfig) { c.tol = tol }
}

// WithLogger attaches a logger; steps are traced at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(c *runConfig) { c.logger = l }
}

// WithStepHook registers fn to be called after every produced step.
func WithStepHook(fn StepHook) Option {
	return func(c *runConfig) { c.hook = fn }
}

// WithContext makes Run check ctx between steps.
func WithContext(ctx context.Context) Option {
	return func(c *runConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
