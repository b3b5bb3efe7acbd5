// SPDX-License-Identifier: MIT

package simulate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts simulator activity. A nil *Metrics records nothing.
type Metrics struct {
	RHSEvaluations     prometheus.Counter
	Retries            prometheus.Counter
	Failures           prometheus.Counter
	Runs               prometheus.Counter
	TimeCourseDuration prometheus.Histogram
}

// NewMetrics registers the simulator metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		RHSEvaluations: f.NewCounter(prometheus.CounterOpts{
			Name: "modelbase_simulate_rhs_evaluations_total",
			Help: "Total number of right-hand side evaluations",
		}),
		Retries: f.NewCounter(prometheus.CounterOpts{
			Name: "modelbase_simulate_retries_total",
			Help: "Integration attempts repeated with a reduced step",
		}),
		Failures: f.NewCounter(prometheus.CounterOpts{
			Name: "modelbase_simulate_failures_total",
			Help: "Integrations that failed at the minimum step",
		}),
		Runs: f.NewCounter(prometheus.CounterOpts{
			Name: "modelbase_simulate_runs_total",
			Help: "Time courses recorded",
		}),
		TimeCourseDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "modelbase_simulate_time_course_duration_seconds",
			Help:    "Wall time of completed time courses in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60},
		}),
	}
}

func (m *Metrics) rhs() {
	if m != nil {
		m.RHSEvaluations.Inc()
	}
}

func (m *Metrics) retry() {
	if m != nil {
		m.Retries.Inc()
	}
}

func (m *Metrics) failure() {
	if m != nil {
		m.Failures.Inc()
	}
}

func (m *Metrics) run(d time.Duration) {
	if m != nil {
		m.Runs.Inc()
		m.TimeCourseDuration.Observe(d.Seconds())
	}
}
