package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for credit-report normalization.
type Metrics struct {
	// Normalizations by detected payload shape and served bureau
	Normalizations *prometheus.CounterVec

	// Requests served from another bureau's view
	BureauFallbacks *prometheus.CounterVec

	// Derogatory severity of produced profiles
	Severity *prometheus.CounterVec

	// Profile store lookups by result
	StoreLookups *prometheus.CounterVec

	NormalizeLatency prometheus.Histogram
}

// New registers all creditreport metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Normalizations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creditguard_normalizations_total",
			Help: "Total credit report normalizations by payload shape and bureau",
		}, []string{"shape", "bureau"}),

		BureauFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creditguard_bureau_fallbacks_total",
			Help: "Requests for a bureau absent from the response that were served another bureau's view",
		}, []string{"requested", "served"}),

		Severity: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creditguard_derogatory_severity_total",
			Help: "Normalized profiles by derogatory severity",
		}, []string{"severity"}),

		StoreLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creditguard_profile_store_lookups_total",
			Help: "Profile store lookups by result",
		}, []string{"result"}), // result: "hit", "miss", "error"

		NormalizeLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "creditguard_normalize_duration_seconds",
			Help:    "Duration of a normalization including persistence",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
	}
}

// IncrementNormalization records one produced profile.
func (m *Metrics) IncrementNormalization(shape, bureau string) {
	if m != nil {
		m.Normalizations.WithLabelValues(shape, bureau).Inc()
	}
}

// IncrementBureauFallback records a substituted provider view.
func (m *Metrics) IncrementBureauFallback(requested, served string) {
	if m != nil {
		m.BureauFallbacks.WithLabelValues(requested, served).Inc()
	}
}

// IncrementSeverity records the severity of a produced profile.
func (m *Metrics) IncrementSeverity(severity string) {
	if m != nil {
		m.Severity.WithLabelValues(severity).Inc()
	}
}

// RecordStoreLookup records a profile store lookup result.
func (m *Metrics) RecordStoreLookup(result string) {
	if m != nil {
		m.StoreLookups.WithLabelValues(result).Inc()
	}
}

// ObserveNormalizeLatency records the duration of one normalization.
func (m *Metrics) ObserveNormalizeLatency(d time.Duration) {
	if m != nil {
		m.NormalizeLatency.Observe(d.Seconds())
	}
}
