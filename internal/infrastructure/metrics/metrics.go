package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes
const (
	OutcomeRejected = "rejected"
	OutcomeSuccess  = "success"
	OutcomeDanger   = "danger"
	OutcomeFailed   = "failed"
)

// Metrics holds the prometheus collectors for the submission controller
type Metrics struct {
	Submissions       *prometheus.CounterVec
	InFlight          prometheus.Gauge
	ClassifierLatency prometheus.Histogram
}

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "phishguard",
			Name:      "submissions_total",
			Help:      "Number of form submissions by outcome.",
		}, []string{"outcome"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "phishguard",
			Name:      "classifier_requests_in_flight",
			Help:      "Number of classifier requests waiting for a response.",
		}),
		ClassifierLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "phishguard",
			Name:      "classifier_request_duration_seconds",
			Help:      "Classifier round trip latency.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Submissions, m.InFlight, m.ClassifierLatency)
	}

	return m
}

// ObserveOutcome counts one submission outcome
func (m *Metrics) ObserveOutcome(outcome string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(outcome).Inc()
}
