package httpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Run starts the HTTP server and the optional fetch scheduler, then blocks
// until a shutdown signal:
//  1. Map routes.
//  2. Start the scheduler when a fetch interval is configured.
//  3. Start HTTP serving.
//  4. Wait for SIGINT/SIGTERM.
func (srv *HTTPServer) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv.mapHandlers()

	if srv.interval > 0 {
		go srv.schedule(ctx)
		srv.logger.Infof(ctx, "httpserver: fetch scheduler started, interval %s", srv.interval)
	}

	go func() {
		if err := srv.gin.Run(fmt.Sprintf(":%d", srv.port)); err != nil {
			srv.logger.Errorf(ctx, "httpserver: serve error: %v", err)
		}
	}()
	srv.logger.Infof(ctx, "httpserver: listening on port %d", srv.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	srv.logger.Infof(ctx, "httpserver: received %s, shutting down", <-ch)

	cancel()
	return nil
}

// schedule runs the aggregator immediately and then on every interval tick
// until ctx is cancelled.
func (srv *HTTPServer) schedule(ctx context.Context) {
	srv.runAndWrite(ctx)

	ticker := time.NewTicker(srv.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			srv.runAndWrite(ctx)
		}
	}
}

func (srv *HTTPServer) runAndWrite(ctx context.Context) {
	snap := srv.runner.RunOnce(ctx)
	if err := srv.runner.Write(snap); err != nil {
		// Leave the previous document in place; the dashboard keeps
		// rendering the last good snapshot.
		srv.logger.Errorf(ctx, "httpserver: write snapshot: %v", err)
	}
}
