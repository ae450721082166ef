// The fetcher is the cron entry point: one aggregation pass, one atomic
// rewrite of the output document, exit code 0 regardless of per-source
// failures. Run it every 5 minutes:
//
//	*/5 * * * * /usr/local/bin/fetcher
package main

import (
	"context"
	"errors"
	"fmt"

	"statusboard-srv/config"
	"statusboard-srv/internal/aggregate"
	"statusboard-srv/internal/runlock"
	"statusboard-srv/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	if cfg.Fetch.LockFile != "" {
		lock, err := runlock.Acquire(cfg.Fetch.LockFile)
		if err != nil {
			if errors.Is(err, runlock.ErrHeld) {
				logger.Warnf(ctx, "fetcher: %v, skipping this run", err)
				return
			}
			logger.Errorf(ctx, "fetcher: acquire run lock: %v", err)
			return
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warnf(ctx, "fetcher: %v", err)
			}
		}()
	}

	runner := aggregate.New(cfg, logger, aggregate.NewNoopMetrics())
	snap := runner.RunOnce(ctx)

	if err := runner.Write(snap); err != nil {
		// The previous document stays in place; the dashboard keeps
		// rendering the last good snapshot. Still exit 0: partial
		// availability over hard failure.
		logger.Errorf(ctx, "fetcher: write snapshot: %v", err)
		return
	}
	logger.Infof(ctx, "fetcher: snapshot written to %s", cfg.Fetch.OutputFile)
}
