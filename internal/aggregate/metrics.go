package aggregate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// promMetrics exports fetch outcomes on a prometheus registry. Used by the
// server binary, where runs repeat on an interval and /metrics is scrapable.
type promMetrics struct {
	attempts    *prometheus.CounterVec
	failures    *prometheus.CounterVec
	runDuration prometheus.Histogram
	sourcesOK   prometheus.Gauge
}

// NewPromMetrics creates a collector registered on reg.
func NewPromMetrics(reg prometheus.Registerer) MetricsCollector {
	factory := promauto.With(reg)
	return &promMetrics{
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "statusboard_fetch_attempts_total",
			Help: "Fetch attempts per source, including retries.",
		}, []string{"source"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "statusboard_fetch_failures_total",
			Help: "Sources that exhausted all fetch attempts in a run.",
		}, []string{"source"}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "statusboard_run_duration_seconds",
			Help:    "Wall time of one aggregation run.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		sourcesOK: factory.NewGauge(prometheus.GaugeOpts{
			Name: "statusboard_sources_ok",
			Help: "Sources with a live result in the most recent run.",
		}),
	}
}

func (m *promMetrics) IncFetchAttempt(sourceName string) {
	m.attempts.WithLabelValues(sourceName).Inc()
}

func (m *promMetrics) IncFetchFailure(sourceName string) {
	m.failures.WithLabelValues(sourceName).Inc()
}

func (m *promMetrics) ObserveRunDuration(d time.Duration) {
	m.runDuration.Observe(d.Seconds())
}

func (m *promMetrics) SetSourcesOK(n int) {
	m.sourcesOK.Set(float64(n))
}

// noopMetrics discards everything. Used by the one-shot cron binary, which
// has no scrape endpoint, and by tests.
type noopMetrics struct{}

// NewNoopMetrics creates a collector that records nothing.
func NewNoopMetrics() MetricsCollector {
	return noopMetrics{}
}

func (noopMetrics) IncFetchAttempt(string)          {}
func (noopMetrics) IncFetchFailure(string)          {}
func (noopMetrics) ObserveRunDuration(time.Duration) {}
func (noopMetrics) SetSourcesOK(int)                {}
