// Package automation fetches job outcomes from an AWX-compatible jobs API.
package automation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"statusboard-srv/config"
	"statusboard-srv/internal/source"
	"statusboard-srv/pkg/httpclient"
	"statusboard-srv/pkg/log"
	"statusboard-srv/pkg/retry"
)

const (
	// Jobs created within this window are counted.
	reportWindow = 24 * time.Hour

	// The failed-job list is capped and error text truncated to keep the
	// output document bounded.
	maxFailedJobs = 5
	maxErrorLen   = 100
)

// Fetcher pulls recent job runs and reduces them to pass/fail counts.
type Fetcher struct {
	cfg    config.AutomationConfig
	client *httpclient.Client
	logger log.Logger

	now func() time.Time
}

// New creates an automation-runner fetcher.
func New(cfg config.AutomationConfig, client *httpclient.Client, logger log.Logger) *Fetcher {
	return &Fetcher{cfg: cfg, client: client, logger: logger, now: time.Now}
}

type jobsPayload struct {
	Results []struct {
		Name         string `json:"name"`
		Status       string `json:"status"`
		ResultStdout string `json:"result_stdout"`
	} `json:"results"`
}

// Fetch returns the normalized job summary for the last 24 hours.
func (f *Fetcher) Fetch(ctx context.Context) (*source.AutomationResult, error) {
	if err := f.cfg.Validate(); err != nil {
		return nil, retry.Permanent(err)
	}

	since := source.Timestamp(f.now().Add(-reportWindow))
	url := fmt.Sprintf("%s?created__gt=%s&order_by=-created", f.cfg.URL, since)

	body, err := f.client.Do(ctx, httpclient.Request{
		Method:      http.MethodGet,
		URL:         url,
		BearerToken: f.cfg.Token,
	})
	if err != nil {
		return nil, err
	}

	var payload jobsPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, fmt.Errorf("automation: decode payload: %w", err)
	}

	counts := source.JobCounts{Total: len(payload.Results), FailedList: []source.FailedJob{}}
	for _, job := range payload.Results {
		switch job.Status {
		case "successful":
			counts.Passed++
		case "failed":
			counts.Failed++
			if len(counts.FailedList) < maxFailedJobs {
				counts.FailedList = append(counts.FailedList, source.FailedJob{
					Name:  jobName(job.Name),
					Error: jobError(job.ResultStdout),
				})
			}
		}
	}
	f.logger.Debugf(ctx, "automation: %d jobs, %d failed", counts.Total, counts.Failed)

	return &source.AutomationResult{
		LastRun: source.Timestamp(f.now()),
		Jobs:    counts,
	}, nil
}

func jobName(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}

func jobError(stdout string) string {
	if stdout == "" {
		return "Unknown error"
	}
	if len(stdout) > maxErrorLen {
		return stdout[:maxErrorLen]
	}
	return stdout
}
