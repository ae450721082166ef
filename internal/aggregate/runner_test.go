package aggregate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusboard-srv/config"
	"statusboard-srv/internal/source"
	"statusboard-srv/pkg/log"
	"statusboard-srv/pkg/retry"
)

// fakeFetcher satisfies any of the per-source fetcher interfaces.
type fakeFetcher[T any] struct {
	res   *T
	err   error
	calls int
}

func (f *fakeFetcher[T]) Fetch(context.Context) (*T, error) {
	f.calls++
	return f.res, f.err
}

type recordingMetrics struct {
	attempts  map[string]int
	failures  map[string]int
	sourcesOK int
	durations int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{attempts: map[string]int{}, failures: map[string]int{}}
}

func (m *recordingMetrics) IncFetchAttempt(name string)        { m.attempts[name]++ }
func (m *recordingMetrics) IncFetchFailure(name string)        { m.failures[name]++ }
func (m *recordingMetrics) ObserveRunDuration(time.Duration)   { m.durations++ }
func (m *recordingMetrics) SetSourcesOK(n int)                 { m.sourcesOK = n }

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: log.LevelError, Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})
}

func allEnabledConfig() *config.Config {
	return &config.Config{
		Fetch: config.FetchConfig{
			MaxAttempts: 3,
			BackoffBase: time.Millisecond,
			BackoffMode: "fixed",
			OutputFile:  "data.json",
		},
		Incidents:  config.IncidentsConfig{Enabled: true, URL: "https://tracker.internal", Username: "u", Password: "p"},
		Uptime:     config.UptimeConfig{Enabled: true, URL: "https://uptime.internal"},
		Perf:       config.PerfConfig{Enabled: true, URL: "https://perf.internal", Username: "u", Password: "p"},
		Automation: config.AutomationConfig{Enabled: true, URL: "https://awx.internal", Token: "t"},
		Audit:      config.AuditConfig{Enabled: true, URL: "https://audit.internal"},
		VulnScan:   config.VulnScanConfig{Enabled: true, URL: "https://scanner.internal", AccessKey: "a", SecretKey: "s"},
	}
}

type testFetchers struct {
	incidents  *fakeFetcher[source.IncidentResult]
	uptime     *fakeFetcher[source.UptimeResult]
	perf       *fakeFetcher[source.PerfResult]
	automation *fakeFetcher[source.AutomationResult]
	audit      *fakeFetcher[source.AuditResult]
	vulnscan   *fakeFetcher[source.VulnScanResult]
}

func healthyFetchers() *testFetchers {
	return &testFetchers{
		incidents:  &fakeFetcher[source.IncidentResult]{res: &source.IncidentResult{Incidents: source.SeverityCounts{Critical: 1, Total: 1}}},
		uptime:     &fakeFetcher[source.UptimeResult]{res: &source.UptimeResult{Servers: source.ServerCounts{Total: 10, Up: 10, DownList: []source.DownServer{}}}},
		perf:       &fakeFetcher[source.PerfResult]{res: &source.PerfResult{}},
		automation: &fakeFetcher[source.AutomationResult]{res: &source.AutomationResult{LastRun: "2026-03-14T09:00:00Z"}},
		audit:      &fakeFetcher[source.AuditResult]{res: &source.AuditResult{LastScan: "2026-03-14T09:00:00Z"}},
		vulnscan:   &fakeFetcher[source.VulnScanResult]{res: &source.VulnScanResult{LastScan: "2026-03-14T09:00:00Z"}},
	}
}

func newTestRunner(cfg *config.Config, fetchers *testFetchers, metrics MetricsCollector) *Runner {
	return &Runner{
		cfg:     cfg,
		logger:  testLogger(),
		metrics: metrics,
		policy: retry.Policy{
			MaxAttempts: cfg.Fetch.MaxAttempts,
			Base:        cfg.Fetch.BackoffBase,
			Mode:        cfg.Fetch.BackoffMode,
		},
		incidents:  fetchers.incidents,
		uptime:     fetchers.uptime,
		perf:       fetchers.perf,
		automation: fetchers.automation,
		audit:      fetchers.audit,
		vulnscan:   fetchers.vulnscan,
		now:        func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) },
		newRunID:   func() string { return "run-0001" },
	}
}

func TestRunOnce(t *testing.T) {
	t.Run("all sources ok", func(t *testing.T) {
		fetchers := healthyFetchers()
		metrics := newRecordingMetrics()
		r := newTestRunner(allEnabledConfig(), fetchers, metrics)

		snap := r.RunOnce(context.Background())

		require.Len(t, snap.FetchStatus, len(source.Names()))
		for _, name := range source.Names() {
			status := snap.FetchStatus[name]
			assert.Equal(t, source.StatusOK, status.Status, name)
			require.NotNil(t, status.LastUpdated, name)
			assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), *status.LastUpdated)
			assert.Empty(t, status.Error)
		}

		assert.Same(t, fetchers.incidents.res, snap.Sources.Incidents)
		assert.Same(t, fetchers.vulnscan.res, snap.Sources.VulnScan)
		assert.Equal(t, "run-0001", snap.RunID)
		assert.Equal(t, 6, metrics.sourcesOK)
		assert.Equal(t, 1, metrics.attempts[source.NameIncidents])
	})

	t.Run("failing source keeps mock data and records the error", func(t *testing.T) {
		fetchers := healthyFetchers()
		fetchers.incidents = &fakeFetcher[source.IncidentResult]{err: errors.New("connection refused")}
		metrics := newRecordingMetrics()
		r := newTestRunner(allEnabledConfig(), fetchers, metrics)

		snap := r.RunOnce(context.Background())

		status := snap.FetchStatus[source.NameIncidents]
		assert.Equal(t, source.StatusError, status.Status)
		assert.Equal(t, "connection refused", status.Error)
		assert.Nil(t, status.LastUpdated)

		assert.Equal(t, source.MockIncidents(), snap.Sources.Incidents)
		assert.Equal(t, source.StatusOK, snap.FetchStatus[source.NameUptime].Status)
		assert.Equal(t, 5, metrics.sourcesOK)
		assert.Equal(t, 1, metrics.failures[source.NameIncidents])
	})

	t.Run("failing source is retried exactly max attempts times", func(t *testing.T) {
		fetchers := healthyFetchers()
		fetchers.perf = &fakeFetcher[source.PerfResult]{err: errors.New("timeout")}
		metrics := newRecordingMetrics()
		r := newTestRunner(allEnabledConfig(), fetchers, metrics)

		r.RunOnce(context.Background())

		assert.Equal(t, 3, fetchers.perf.calls)
		assert.Equal(t, 3, metrics.attempts[source.NamePerformance])
		assert.Equal(t, 1, metrics.failures[source.NamePerformance])
	})

	t.Run("disabled source is never fetched", func(t *testing.T) {
		cfg := allEnabledConfig()
		cfg.Audit.Enabled = false
		fetchers := healthyFetchers()
		r := newTestRunner(cfg, fetchers, newRecordingMetrics())

		snap := r.RunOnce(context.Background())

		assert.Equal(t, 0, fetchers.audit.calls)
		assert.Equal(t, source.StatusDisabled, snap.FetchStatus[source.NameAudit].Status)
		assert.Equal(t, source.MockAudit(), snap.Sources.Audit)
	})

	t.Run("unconfigured source reports mock status", func(t *testing.T) {
		cfg := allEnabledConfig()
		cfg.VulnScan = config.VulnScanConfig{}
		fetchers := healthyFetchers()
		r := newTestRunner(cfg, fetchers, newRecordingMetrics())

		snap := r.RunOnce(context.Background())

		assert.Equal(t, 0, fetchers.vulnscan.calls)
		assert.Equal(t, source.StatusMock, snap.FetchStatus[source.NameVulnScan].Status)
		assert.Equal(t, source.MockVulnScan(), snap.Sources.VulnScan)
	})

	t.Run("every source slot is populated even when everything fails", func(t *testing.T) {
		fetchers := &testFetchers{
			incidents:  &fakeFetcher[source.IncidentResult]{err: errors.New("down")},
			uptime:     &fakeFetcher[source.UptimeResult]{err: errors.New("down")},
			perf:       &fakeFetcher[source.PerfResult]{err: errors.New("down")},
			automation: &fakeFetcher[source.AutomationResult]{err: errors.New("down")},
			audit:      &fakeFetcher[source.AuditResult]{err: errors.New("down")},
			vulnscan:   &fakeFetcher[source.VulnScanResult]{err: errors.New("down")},
		}
		metrics := newRecordingMetrics()
		r := newTestRunner(allEnabledConfig(), fetchers, metrics)

		snap := r.RunOnce(context.Background())

		assert.NotNil(t, snap.Sources.Incidents)
		assert.NotNil(t, snap.Sources.Uptime)
		assert.NotNil(t, snap.Sources.Performance)
		assert.NotNil(t, snap.Sources.Automation)
		assert.NotNil(t, snap.Sources.Audit)
		assert.NotNil(t, snap.Sources.VulnScan)
		assert.Equal(t, 0, metrics.sourcesOK)
	})

	t.Run("snapshot carries dashboard urls", func(t *testing.T) {
		r := newTestRunner(allEnabledConfig(), healthyFetchers(), newRecordingMetrics())

		snap := r.RunOnce(context.Background())

		assert.Equal(t, "https://uptime.internal", snap.SourceURLs[source.NameUptime])
		assert.Len(t, snap.SourceURLs, len(source.Names()))
	})
}
