// Package metrics exposes Prometheus collectors for selection requests.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "knapsack"

// Outcome labels for SolveTotal.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Recorder groups the collectors updated by the API.
type Recorder struct {
	solveDuration *prometheus.HistogramVec
	solveTotal    *prometheus.CounterVec
	catalogItems  prometheus.Gauge
}

// New creates a Recorder and registers its collectors on reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		solveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Time spent selecting items, by strategy.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"strategy"}),
		solveTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solve_total",
			Help:      "Selection requests, by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		catalogItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_items",
			Help:      "Number of items in the current catalog.",
		}),
	}

	for _, c := range []prometheus.Collector{r.solveDuration, r.solveTotal, r.catalogItems} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveSolve records one selection run.
func (r *Recorder) ObserveSolve(strategy string, elapsed time.Duration, err error) {
	if r == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	r.solveTotal.WithLabelValues(strategy, outcome).Inc()
	r.solveDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

// SetCatalogSize records the size of the active catalog.
func (r *Recorder) SetCatalogSize(n int) {
	if r == nil {
		return
	}
	r.catalogItems.Set(float64(n))
}
