package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementNormalization("multi_bureau", "equifax")
	m.IncrementNormalization("multi_bureau", "equifax")
	m.IncrementBureauFallback("experian", "equifax")
	m.IncrementSeverity("moderate")
	m.RecordStoreLookup("miss")
	m.ObserveNormalizeLatency(3 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Normalizations.WithLabelValues("multi_bureau", "equifax")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BureauFallbacks.WithLabelValues("experian", "equifax")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Severity.WithLabelValues("moderate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreLookups.WithLabelValues("miss")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.NormalizeLatency))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementNormalization("single_bureau", "experian")
		m.IncrementBureauFallback("a", "b")
		m.IncrementSeverity("none")
		m.RecordStoreLookup("hit")
		m.ObserveNormalizeLatency(time.Second)
	})
}
