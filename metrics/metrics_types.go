// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instrumentation for estimation runs.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the estimator
type Registry struct {
	// Run Metrics
	RunsTotal        *prometheus.CounterVec
	RunDuration      prometheus.Histogram
	RunSteps         prometheus.Histogram
	TruncationsTotal prometheus.Counter

	// Step Metrics
	StepsTotal  prometheus.Counter
	StepSupport prometheus.Histogram
	StepBeta    prometheus.Histogram

	// Estimate Metrics
	LastEffectiveResistance prometheus.Gauge
	LastOrders              prometheus.Gauge
	DisconnectedTotal       prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initRunMetrics()
	r.initStepMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
