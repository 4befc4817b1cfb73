package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// Sheet source
	SheetURL    string        `envconfig:"SHEET_URL" required:"true"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`

	// Polling
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"10s"`

	// Daily reset (multi-day use: rehearsal day, then the event itself)
	EnableDailyReset bool   `envconfig:"ENABLE_DAILY_RESET" default:"false"`
	ResetSchedule    string `envconfig:"RESET_SCHEDULE" default:"0 6 * * *"`

	// Application
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Dashboard server
	ServerPort int  `envconfig:"SERVER_PORT" default:"8080"`
	WSEnabled  bool `envconfig:"WS_ENABLED" default:"true"`

	// Monitoring
	EnableMetrics bool `envconfig:"ENABLE_METRICS" default:"true"`
	MetricsPort   int  `envconfig:"METRICS_PORT" default:"9091"`
}

// Load loads configuration from environment variables
// It first attempts to load from .env file if present
func Load() (*Config, error) {
	// Try to load .env file (ignore error if doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.SheetURL == "" {
		return fmt.Errorf("SHEET_URL is required")
	}

	u, err := url.Parse(c.SheetURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("SHEET_URL must be an http(s) URL")
	}

	if c.PollInterval < time.Second {
		return fmt.Errorf("POLL_INTERVAL must be at least 1s")
	}

	return nil
}

// ServerAddr returns the dashboard server listen address
func (c *Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}

// MetricsAddr returns the metrics server listen address
func (c *Config) MetricsAddr() string {
	return fmt.Sprintf(":%d", c.MetricsPort)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// MustLoad loads configuration or exits on error
// Use this in main() where we want to fail fast
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
