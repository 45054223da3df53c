// SPDX-License-Identifier: MIT

package metrics

import (
	"math"
	"time"
)

// Run status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// RecordStep records one produced recurrence step
func (r *Registry) RecordStep(beta float64, support int) {
	r.StepsTotal.Inc()
	r.StepSupport.Observe(float64(support))
	r.StepBeta.Observe(beta)
}

// RecordRun records a finished run; estimate is ignored when it is not finite
func (r *Registry) RecordRun(status string, duration time.Duration, steps, orders int, truncated bool, estimate float64) {
	r.RunsTotal.WithLabelValues(status).Inc()
	r.RunDuration.Observe(duration.Seconds())
	if status != StatusOK {
		return
	}
	r.RunSteps.Observe(float64(steps))
	if truncated {
		r.TruncationsTotal.Inc()
	}
	r.LastOrders.Set(float64(orders))
	if !math.IsInf(estimate, 0) && !math.IsNaN(estimate) {
		r.LastEffectiveResistance.Set(estimate)
	}
}

// RecordDisconnected counts a run between unconnected terminals
func (r *Registry) RecordDisconnected() {
	r.DisconnectedTotal.Inc()
}
