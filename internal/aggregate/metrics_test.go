package aggregate

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusboard-srv/internal/source"
)

func TestPromMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPromMetrics(reg)

	metrics.IncFetchAttempt(source.NameIncidents)
	metrics.IncFetchAttempt(source.NameIncidents)
	metrics.IncFetchAttempt(source.NameUptime)
	metrics.IncFetchFailure(source.NameIncidents)
	metrics.ObserveRunDuration(2 * time.Second)
	metrics.SetSourcesOK(5)

	pm, ok := metrics.(*promMetrics)
	require.True(t, ok)

	assert.Equal(t, 2.0, testutil.ToFloat64(pm.attempts.WithLabelValues(source.NameIncidents)))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.attempts.WithLabelValues(source.NameUptime)))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.failures.WithLabelValues(source.NameIncidents)))
	assert.Equal(t, 5.0, testutil.ToFloat64(pm.sourcesOK))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "statusboard_fetch_attempts_total")
	assert.Contains(t, names, "statusboard_run_duration_seconds")
}
