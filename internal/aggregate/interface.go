package aggregate

import (
	"context"
	"time"

	"statusboard-srv/internal/source"
)

// Per-source fetcher contracts. Each is a pure function of its config block:
// a normalized result or an error, never a panic.

type IncidentFetcher interface {
	Fetch(ctx context.Context) (*source.IncidentResult, error)
}

type UptimeFetcher interface {
	Fetch(ctx context.Context) (*source.UptimeResult, error)
}

type PerfFetcher interface {
	Fetch(ctx context.Context) (*source.PerfResult, error)
}

type AutomationFetcher interface {
	Fetch(ctx context.Context) (*source.AutomationResult, error)
}

type AuditFetcher interface {
	Fetch(ctx context.Context) (*source.AuditResult, error)
}

type VulnScanFetcher interface {
	Fetch(ctx context.Context) (*source.VulnScanResult, error)
}

// MetricsCollector records fetch outcomes for observability.
type MetricsCollector interface {
	IncFetchAttempt(sourceName string)
	IncFetchFailure(sourceName string)
	ObserveRunDuration(d time.Duration)
	SetSourcesOK(n int)
}
