package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration.
type Config struct {
	// Server
	Port          int `env:"MCP_PORT" envDefault:"8080"`
	CallTimeoutMS int `env:"CALL_TIMEOUT_MS" envDefault:"30000"`

	// Upstream provider. The API key may instead come from the -api-key
	// flag, which takes precedence (resolved in main).
	APIKey  string `env:"FINNHUB_API_KEY"`
	BaseURL string `env:"FINNHUB_BASE_URL" envDefault:"https://finnhub.io/api/v1"`

	// Observability
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// CallTimeout returns the per-tool-call timeout as a time.Duration.
func (c *Config) CallTimeout() time.Duration {
	return time.Duration(c.CallTimeoutMS) * time.Millisecond
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration. The API key is checked separately
// in main after the flag override is applied.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	if c.CallTimeoutMS < 1 {
		return fmt.Errorf("call timeout must be at least 1ms, got %dms", c.CallTimeoutMS)
	}

	if c.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
