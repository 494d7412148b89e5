package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration
type Config struct {
	Port                 string        `env:"PORT" envDefault:"8000"`
	Environment          string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`
	ServiceVersion       string        `env:"SERVICE_VERSION" envDefault:"1.0.0"`
	DefaultRegion        string        `env:"DEFAULT_REGION" envDefault:"Mumbai"`
	DefaultForecastDays  int           `env:"DEFAULT_FORECAST_DAYS" envDefault:"30"`
	MaxForecastDays      int           `env:"MAX_FORECAST_DAYS" envDefault:"365"`
	CatalogPath          string        `env:"CATALOG_PATH"`
	RandomSeed           uint64        `env:"RANDOM_SEED" envDefault:"0"`
	CORSOrigins          []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	MonitoringMaxEntries int           `env:"MONITORING_MAX_ENTRIES" envDefault:"10000"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the forecast limits.
func (c *Config) Validate() error {
	if c.MaxForecastDays < 1 {
		return errors.New("MAX_FORECAST_DAYS must be >= 1")
	}
	if c.DefaultForecastDays < 1 || c.DefaultForecastDays > c.MaxForecastDays {
		return fmt.Errorf("DEFAULT_FORECAST_DAYS must be between 1 and %d, got %d", c.MaxForecastDays, c.DefaultForecastDays)
	}
	if c.MonitoringMaxEntries < 1 {
		return errors.New("MONITORING_MAX_ENTRIES must be >= 1")
	}
	return nil
}

// IsDev reports whether the service runs in development mode.
func (c *Config) IsDev() bool {
	return c.Environment == "development"
}

// AllowAllOrigins reports whether CORS is unrestricted.
func (c *Config) AllowAllOrigins() bool {
	if len(c.CORSOrigins) == 0 {
		return true
	}
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}
