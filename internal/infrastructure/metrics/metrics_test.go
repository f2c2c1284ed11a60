package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("registers collectors", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := New(reg)

		m.ObserveOutcome(OutcomeSuccess)
		m.InFlight.Inc()

		count, err := testutil.GatherAndCount(reg)
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("nil registerer", func(t *testing.T) {
		m := New(nil)
		assert.NotNil(t, m.Submissions)
	})
}

func TestMetrics_ObserveOutcome(t *testing.T) {
	t.Run("counts by outcome", func(t *testing.T) {
		m := New(nil)

		m.ObserveOutcome(OutcomeDanger)
		m.ObserveOutcome(OutcomeDanger)
		m.ObserveOutcome(OutcomeRejected)

		assert.Equal(t, float64(2), testutil.ToFloat64(m.Submissions.WithLabelValues(OutcomeDanger)))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.Submissions.WithLabelValues(OutcomeRejected)))
	})

	t.Run("nil metrics is a no-op", func(t *testing.T) {
		var m *Metrics
		assert.NotPanics(t, func() { m.ObserveOutcome(OutcomeFailed) })
	})
}
