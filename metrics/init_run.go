// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "reffgrid_runs_total",
			Help: "Total number of estimation runs",
		},
		[]string{"status"}, // ok, error
	)

	r.RunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reffgrid_run_duration_seconds",
			Help:    "Duration of estimation runs in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)

	r.RunSteps = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reffgrid_run_steps",
			Help:    "Number of recurrence steps produced per run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	r.TruncationsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "reffgrid_truncations_total",
			Help: "Runs that stopped early because the subspace was exhausted",
		},
	)

	r.LastEffectiveResistance = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "reffgrid_last_effective_resistance",
			Help: "Highest-order estimate of the most recent successful run",
		},
	)

	r.LastOrders = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "reffgrid_last_orders",
			Help: "Number of truncation orders of the most recent successful run",
		},
	)

	r.DisconnectedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "reffgrid_disconnected_total",
			Help: "Runs whose injection and extraction terminals were not connected",
		},
	)
}

func (r *Registry) initStepMetrics() {
	r.StepsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "reffgrid_steps_total",
			Help: "Total number of recurrence steps produced",
		},
	)

	r.StepSupport = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reffgrid_step_support",
			Help:    "Number of non-zero entries per produced snapshot",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		},
	)

	r.StepBeta = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reffgrid_step_beta",
			Help:    "Normalization scalar per produced step",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
		},
	)
}
