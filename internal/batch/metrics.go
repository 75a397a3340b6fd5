package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for Metrics.Checks.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// Metrics provides observability for batch checks. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	// Identifiers checked by outcome
	Checks *prometheus.CounterVec

	// Duration of a whole Check call
	BatchDuration prometheus.Histogram
}

// NewMetrics creates batch metrics registered with reg. A nil reg leaves
// them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Checks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rutid_batch_checks_total",
			Help: "Total identifiers checked by outcome",
		}, []string{"outcome"}), // outcome: "valid", "invalid"

		BatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rutid_batch_duration_seconds",
			Help:    "Duration of batch identifier checks",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}
}

// RecordSummary adds a batch's valid and invalid counts.
func (m *Metrics) RecordSummary(s Summary) {
	if m != nil {
		m.Checks.WithLabelValues(OutcomeValid).Add(float64(s.Valid))
		m.Checks.WithLabelValues(OutcomeInvalid).Add(float64(s.Invalid))
	}
}

// ObserveBatchDuration records how long a batch took.
func (m *Metrics) ObserveBatchDuration(d time.Duration) {
	if m != nil {
		m.BatchDuration.Observe(d.Seconds())
	}
}
