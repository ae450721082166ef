package aggregate

import (
	"time"

	"github.com/google/uuid"

	"statusboard-srv/config"
	"statusboard-srv/internal/source"
	"statusboard-srv/internal/source/audit"
	"statusboard-srv/internal/source/automation"
	"statusboard-srv/internal/source/incidents"
	"statusboard-srv/internal/source/perf"
	"statusboard-srv/internal/source/uptime"
	"statusboard-srv/internal/source/vulnscan"
	"statusboard-srv/pkg/httpclient"
	"statusboard-srv/pkg/log"
	"statusboard-srv/pkg/retry"
)

// Runner drives one aggregation pass: every source in a fixed order,
// sequentially, each under the shared retry policy; per-source failure
// degrades to mock data and never aborts the run.
type Runner struct {
	cfg     *config.Config
	logger  log.Logger
	metrics MetricsCollector
	policy  retry.Policy

	incidents  IncidentFetcher
	uptime     UptimeFetcher
	perf       PerfFetcher
	automation AutomationFetcher
	audit      AuditFetcher
	vulnscan   VulnScanFetcher

	now      func() time.Time
	newRunID func() string
}

// New creates a Runner wired with the live fetchers.
func New(cfg *config.Config, logger log.Logger, metrics MetricsCollector) *Runner {
	client := httpclient.New(httpclient.Config{
		Timeout:            cfg.Fetch.Timeout,
		InsecureSkipVerify: !cfg.Fetch.VerifySSL,
	})

	return &Runner{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		policy: retry.Policy{
			MaxAttempts: cfg.Fetch.MaxAttempts,
			Base:        cfg.Fetch.BackoffBase,
			Mode:        cfg.Fetch.BackoffMode,
		},

		incidents:  incidents.New(cfg.Incidents, client, logger),
		uptime:     uptime.New(cfg.Uptime, client, logger),
		perf:       perf.New(cfg.Perf, client, logger),
		automation: automation.New(cfg.Automation, client, logger),
		audit:      audit.New(cfg.Audit, client, logger),
		vulnscan:   vulnscan.New(cfg.VulnScan, client, logger),

		now:      time.Now,
		newRunID: func() string { return uuid.NewString() },
	}
}

// sourceState captures what the runner needs to know about one source's
// config block without depending on its concrete type.
type sourceState struct {
	enabled    bool
	configured bool
}

func (r *Runner) states() map[string]sourceState {
	return map[string]sourceState{
		source.NameIncidents:   {enabled: r.cfg.Incidents.Enabled, configured: r.cfg.Incidents.URL != ""},
		source.NameUptime:      {enabled: r.cfg.Uptime.Enabled, configured: r.cfg.Uptime.URL != ""},
		source.NamePerformance: {enabled: r.cfg.Perf.Enabled, configured: r.cfg.Perf.URL != ""},
		source.NameAutomation:  {enabled: r.cfg.Automation.Enabled, configured: r.cfg.Automation.URL != ""},
		source.NameAudit:       {enabled: r.cfg.Audit.Enabled, configured: r.cfg.Audit.URL != ""},
		source.NameVulnScan:    {enabled: r.cfg.VulnScan.Enabled, configured: r.cfg.VulnScan.URL != ""},
	}
}
