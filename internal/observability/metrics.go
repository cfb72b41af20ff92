package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the weather
// probability service.
type Metrics struct {
	EvaluationsTotal   prometheus.Counter
	ValidationFailures prometheus.Counter
	FallbackScores     prometheus.Counter
	ResultsPublished   prometheus.Counter

	// Upstream (NASA POWER) metrics.
	UpstreamRequests *prometheus.CounterVec // labels: outcome={success,empty,error}
	UpstreamDuration prometheus.Histogram
	CacheLookups     *prometheus.CounterVec // labels: result={hit,miss}

	ExportsTotal *prometheus.CounterVec // labels: format={json,csv}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		EvaluationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_api",
			Name:      "evaluations_total",
			Help:      "Total scoring evaluations performed.",
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_api",
			Name:      "validation_failures_total",
			Help:      "Total requests rejected by validation.",
		}),
		FallbackScores: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_api",
			Name:      "fallback_scores_total",
			Help:      "Total probability entries scored synthetically because no raw value was available.",
		}),
		ResultsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_api",
			Name:      "results_published_total",
			Help:      "Total computed responses published to the results topic.",
		}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_api",
			Name:      "upstream_requests_total",
			Help:      "NASA POWER requests by outcome.",
		}, []string{"outcome"}),
		UpstreamDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_api",
			Name:      "upstream_request_duration_seconds",
			Help:      "NASA POWER request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_api",
			Name:      "fetch_cache_total",
			Help:      "Fetch cache lookups by result.",
		}, []string{"result"}),
		ExportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_api",
			Name:      "exports_total",
			Help:      "Export downloads by format.",
		}, []string{"format"}),
	}

	prometheus.MustRegister(
		m.EvaluationsTotal,
		m.ValidationFailures,
		m.FallbackScores,
		m.ResultsPublished,
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.CacheLookups,
		m.ExportsTotal,
	)

	return m
}

// NewMetricsForTesting creates Metrics with no registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		EvaluationsTotal:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_api", Name: "evaluations_total"}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_api", Name: "validation_failures_total"}),
		FallbackScores:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_api", Name: "fallback_scores_total"}),
		ResultsPublished:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_api", Name: "results_published_total"}),
		UpstreamRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_api", Name: "upstream_requests_total"}, []string{"outcome"}),
		UpstreamDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_api", Name: "upstream_request_duration_seconds"}),
		CacheLookups:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_api", Name: "fetch_cache_total"}, []string{"result"}),
		ExportsTotal:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_api", Name: "exports_total"}, []string{"format"}),
	}
}
