package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"statusboard-srv/internal/aggregate"
	"statusboard-srv/pkg/log"
)

// HTTPServer serves the static dashboard, the snapshot document, health
// endpoints and metrics. New() only wires dependencies and validates them;
// Run() (in httpserver.go) starts background services and HTTP serving.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger

	port       int
	webDir     string
	outputFile string

	// Built-in scheduler; nil runner or zero interval disables it.
	runner   *aggregate.Runner
	interval time.Duration
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port       int
	Mode       string
	WebDir     string
	OutputFile string

	Runner        *aggregate.Runner
	FetchInterval time.Duration
}

// New creates a new HTTPServer instance with the provided configuration.
// This does NOT start any goroutines; use (*HTTPServer).Run().
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:        gin.Default(),
		logger:     logger,
		port:       cfg.Port,
		webDir:     cfg.WebDir,
		outputFile: cfg.OutputFile,
		runner:     cfg.Runner,
		interval:   cfg.FetchInterval,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.outputFile == "" {
		return errors.New("output file path is required")
	}
	if srv.interval > 0 && srv.runner == nil {
		return errors.New("runner is required when a fetch interval is set")
	}
	return nil
}
