// Package audit fetches the change-detection report and extracts detected
// configuration changes. The report is line-oriented text
// ("srv-name: /etc/file modified"), so extraction is a regular expression
// over the body — best-effort against unversioned report formats, adjusted
// per deployment.
package audit

import (
	"context"
	"regexp"
	"strings"
	"time"

	"statusboard-srv/config"
	"statusboard-srv/internal/source"
	"statusboard-srv/pkg/httpclient"
	"statusboard-srv/pkg/log"
	"statusboard-srv/pkg/retry"
)

// One change per line: host, absolute file path, action keyword.
var changePattern = regexp.MustCompile(`(?i)(srv-[\w-]+):\s*(/[\w/.]+)\s+(modified|changed|added|removed)`)

// Change lists are truncated to keep the output document bounded.
const maxChanges = 10

// Fetcher pulls the audit report and extracts configuration changes.
type Fetcher struct {
	cfg    config.AuditConfig
	client *httpclient.Client
	logger log.Logger

	now func() time.Time
}

// New creates an audit-report fetcher.
func New(cfg config.AuditConfig, client *httpclient.Client, logger log.Logger) *Fetcher {
	return &Fetcher{cfg: cfg, client: client, logger: logger, now: time.Now}
}

// Fetch returns the normalized change report.
func (f *Fetcher) Fetch(ctx context.Context) (*source.AuditResult, error) {
	if err := f.cfg.Validate(); err != nil {
		return nil, retry.Permanent(err)
	}

	var auth *httpclient.BasicAuth
	if f.cfg.Username != "" {
		auth = &httpclient.BasicAuth{Username: f.cfg.Username, Password: f.cfg.Password}
	}

	body, err := f.client.Get(ctx, f.cfg.URL, auth)
	if err != nil {
		return nil, err
	}

	matches := changePattern.FindAllStringSubmatch(body, -1)
	stamp := source.Timestamp(f.now())

	alerts := []source.ConfigChange{}
	for _, m := range matches {
		if len(alerts) == maxChanges {
			break
		}
		alerts = append(alerts, source.ConfigChange{
			Server: m[1],
			File:   m[2],
			Change: capitalize(m[3]),
			// Report lines carry no timestamps; stamp the fetch time.
			Time: stamp,
		})
	}
	f.logger.Debugf(ctx, "audit: %d config changes extracted", len(alerts))

	return &source.AuditResult{
		LastScan: stamp,
		ConfigChanges: source.ChangeReport{
			Total:  len(alerts),
			Alerts: alerts,
		},
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
