package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds all service configuration. It is loaded once at process start
// and treated as immutable for the rest of the run.
type Config struct {
	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Fetch pipeline policy
	Fetch FetchConfig

	// One block per monitoring source
	Incidents  IncidentsConfig
	Uptime     UptimeConfig
	Perf       PerfConfig
	Automation AutomationConfig
	Audit      AuditConfig
	VulnScan   VulnScanConfig
}

// ServerConfig is the configuration for the dashboard HTTP server.
type ServerConfig struct {
	Port   int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode   string `env:"HTTP_MODE" envDefault:"release"`
	WebDir string `env:"WEB_DIR" envDefault:"web"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// FetchConfig is the shared policy for all source fetches.
type FetchConfig struct {
	Timeout     time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
	MaxAttempts int           `env:"FETCH_MAX_ATTEMPTS" envDefault:"3"`
	BackoffBase time.Duration `env:"FETCH_BACKOFF_BASE" envDefault:"2s"`
	BackoffMode string        `env:"FETCH_BACKOFF_MODE" envDefault:"exponential"`

	// VerifySSL disables the insecure TLS transport when true. The default is
	// false because most of the monitored backends sit on internal networks
	// with self-signed certificates.
	VerifySSL bool `env:"VERIFY_SSL" envDefault:"false"`

	OutputFile string `env:"OUTPUT_FILE" envDefault:"data.json"`

	// LockFile enables the overlap guard when set. Empty means no locking.
	LockFile string `env:"FETCH_LOCK_FILE"`

	// Interval enables the server's built-in fetch scheduler when positive.
	// Zero means cron-driven only.
	Interval time.Duration `env:"FETCH_INTERVAL" envDefault:"0"`
}

// IncidentsConfig is the configuration for the incident tracker source
// (ServiceNow-compatible table API).
type IncidentsConfig struct {
	Enabled  bool   `env:"INCIDENTS_ENABLED" envDefault:"false"`
	URL      string `env:"INCIDENTS_URL"`
	Username string `env:"INCIDENTS_USER"`
	Password string `env:"INCIDENTS_PASS"`
}

// UptimeConfig is the configuration for the server-uptime monitor source.
type UptimeConfig struct {
	Enabled  bool   `env:"UPTIME_ENABLED" envDefault:"false"`
	URL      string `env:"UPTIME_URL"`
	Username string `env:"UPTIME_USER"`
	Password string `env:"UPTIME_PASS"`
}

// PerfConfig is the configuration for the performance-alert source
// (SolarWinds SWIS-compatible query API).
type PerfConfig struct {
	Enabled  bool   `env:"PERF_ENABLED" envDefault:"false"`
	URL      string `env:"PERF_URL"`
	Username string `env:"PERF_USER"`
	Password string `env:"PERF_PASS"`
}

// AutomationConfig is the configuration for the automation-job runner source
// (AWX-compatible jobs API, token authenticated).
type AutomationConfig struct {
	Enabled bool   `env:"AUTOMATION_ENABLED" envDefault:"false"`
	URL     string `env:"AUTOMATION_URL"`
	Token   string `env:"AUTOMATION_TOKEN"`
}

// AuditConfig is the configuration for the audit/change-detection report source.
type AuditConfig struct {
	Enabled  bool   `env:"AUDIT_ENABLED" envDefault:"false"`
	URL      string `env:"AUDIT_URL"`
	Username string `env:"AUDIT_USER"`
	Password string `env:"AUDIT_PASS"`
}

// VulnScanConfig is the configuration for the vulnerability scanner source
// (SecurityCenter-compatible analysis API, access/secret key authenticated).
type VulnScanConfig struct {
	Enabled   bool   `env:"VULNSCAN_ENABLED" envDefault:"false"`
	URL       string `env:"VULNSCAN_URL"`
	AccessKey string `env:"VULNSCAN_ACCESS_KEY"`
	SecretKey string `env:"VULNSCAN_SECRET_KEY"`
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Fetch.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c FetchConfig) validate() error {
	if c.MaxAttempts < 1 {
		return errors.New("FETCH_MAX_ATTEMPTS must be at least 1")
	}
	switch c.BackoffMode {
	case "exponential", "fixed":
	default:
		return fmt.Errorf("unknown FETCH_BACKOFF_MODE %q", c.BackoffMode)
	}
	if c.OutputFile == "" {
		return errors.New("OUTPUT_FILE must not be empty")
	}
	return nil
}

// Validate reports whether an enabled incident source is fully configured.
// A disabled source is always valid.
func (c IncidentsConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.URL == "" {
		return errors.New("incidents: INCIDENTS_URL is required when enabled")
	}
	if c.Username == "" || c.Password == "" {
		return errors.New("incidents: INCIDENTS_USER and INCIDENTS_PASS are required when enabled")
	}
	return nil
}

func (c UptimeConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.URL == "" {
		return errors.New("uptime: UPTIME_URL is required when enabled")
	}
	return nil
}

func (c PerfConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.URL == "" {
		return errors.New("perf: PERF_URL is required when enabled")
	}
	if c.Username == "" || c.Password == "" {
		return errors.New("perf: PERF_USER and PERF_PASS are required when enabled")
	}
	return nil
}

func (c AutomationConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.URL == "" {
		return errors.New("automation: AUTOMATION_URL is required when enabled")
	}
	if c.Token == "" {
		return errors.New("automation: AUTOMATION_TOKEN is required when enabled")
	}
	return nil
}

func (c AuditConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.URL == "" {
		return errors.New("audit: AUDIT_URL is required when enabled")
	}
	return nil
}

func (c VulnScanConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.URL == "" {
		return errors.New("vulnscan: VULNSCAN_URL is required when enabled")
	}
	if c.AccessKey == "" || c.SecretKey == "" {
		return errors.New("vulnscan: VULNSCAN_ACCESS_KEY and VULNSCAN_SECRET_KEY are required when enabled")
	}
	return nil
}
