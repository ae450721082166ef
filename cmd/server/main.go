// The server hosts the static dashboard, the snapshot document and the
// health/metrics endpoints. With FETCH_INTERVAL set it also runs the
// aggregation pipeline on a ticker, replacing the cron-driven fetcher for
// container deployments.
package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"statusboard-srv/config"
	"statusboard-srv/internal/aggregate"
	"statusboard-srv/internal/httpserver"
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

	var runner *aggregate.Runner
	if cfg.Fetch.Interval > 0 {
		runner = aggregate.New(cfg, logger, aggregate.NewPromMetrics(prometheus.DefaultRegisterer))
	}

	srv, err := httpserver.New(logger, httpserver.Config{
		Port:          cfg.Server.Port,
		Mode:          cfg.Server.Mode,
		WebDir:        cfg.Server.WebDir,
		OutputFile:    cfg.Fetch.OutputFile,
		Runner:        runner,
		FetchInterval: cfg.Fetch.Interval,
	})
	if err != nil {
		logger.Fatalf(ctx, "server: init: %v", err)
	}

	if err := srv.Run(); err != nil {
		logger.Fatalf(ctx, "server: %v", err)
	}
}
