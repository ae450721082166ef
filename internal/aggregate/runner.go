package aggregate

import (
	"context"

	"statusboard-srv/internal/source"
	"statusboard-srv/pkg/retry"
)

// RunOnce performs one aggregation pass and returns the snapshot. It never
// returns an error: every per-source failure is recorded in the fetch-status
// map and covered by mock data.
func (r *Runner) RunOnce(ctx context.Context) *source.Snapshot {
	started := r.now()
	r.logger.Info(ctx, "aggregate: starting run")

	snap := &source.Snapshot{
		GeneratedAt: started.UTC(),
		RunID:       r.newRunID(),
		SourceURLs:  source.DashboardURLs(r.cfg),
		// Mock data is the base; live results overwrite their slot.
		Sources:     source.Mock(),
		FetchStatus: make(map[string]source.FetchStatus, len(source.Names())),
	}

	r.collect(ctx, snap, source.NameIncidents, func(ctx context.Context) error {
		res, err := r.incidents.Fetch(ctx)
		if err == nil {
			snap.Sources.Incidents = res
		}
		return err
	})
	r.collect(ctx, snap, source.NameUptime, func(ctx context.Context) error {
		res, err := r.uptime.Fetch(ctx)
		if err == nil {
			snap.Sources.Uptime = res
		}
		return err
	})
	r.collect(ctx, snap, source.NamePerformance, func(ctx context.Context) error {
		res, err := r.perf.Fetch(ctx)
		if err == nil {
			snap.Sources.Performance = res
		}
		return err
	})
	r.collect(ctx, snap, source.NameAutomation, func(ctx context.Context) error {
		res, err := r.automation.Fetch(ctx)
		if err == nil {
			snap.Sources.Automation = res
		}
		return err
	})
	r.collect(ctx, snap, source.NameAudit, func(ctx context.Context) error {
		res, err := r.audit.Fetch(ctx)
		if err == nil {
			snap.Sources.Audit = res
		}
		return err
	})
	r.collect(ctx, snap, source.NameVulnScan, func(ctx context.Context) error {
		res, err := r.vulnscan.Fetch(ctx)
		if err == nil {
			snap.Sources.VulnScan = res
		}
		return err
	})

	ok := r.okCount(snap)
	r.metrics.SetSourcesOK(ok)
	r.metrics.ObserveRunDuration(r.now().Sub(started))
	r.logger.Infof(ctx, "aggregate: run complete, %d/%d sources ok", ok, len(source.Names()))

	return snap
}

// collect runs one source's fetch under the retry policy and records its
// status. A disabled or unconfigured source is never fetched.
func (r *Runner) collect(ctx context.Context, snap *source.Snapshot, name string, fetch func(context.Context) error) {
	state := r.states()[name]

	if !state.enabled {
		status := source.StatusDisabled
		if !state.configured {
			status = source.StatusMock
		}
		r.logger.Infof(ctx, "aggregate: %s skipped (%s), using mock data", name, status)
		snap.FetchStatus[name] = source.FetchStatus{Status: status}
		return
	}

	err := retry.Do(ctx, r.policy, func(ctx context.Context) error {
		r.metrics.IncFetchAttempt(name)
		return fetch(ctx)
	})
	if err != nil {
		r.metrics.IncFetchFailure(name)
		r.logger.Errorf(ctx, "aggregate: %s failed: %v", name, err)
		snap.FetchStatus[name] = source.FetchStatus{Status: source.StatusError, Error: err.Error()}
		return
	}

	updated := r.now().UTC()
	snap.FetchStatus[name] = source.FetchStatus{Status: source.StatusOK, LastUpdated: &updated}
	r.logger.Infof(ctx, "aggregate: %s ok", name)
}

func (r *Runner) okCount(snap *source.Snapshot) int {
	n := 0
	for _, status := range snap.FetchStatus {
		if status.Status == source.StatusOK {
			n++
		}
	}
	return n
}
