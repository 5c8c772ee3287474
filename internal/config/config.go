// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings. An empty Addr means an automatic
// localhost port.
type Config struct {
	Addr      string        `env:"MENAVKY_ADDR" envDefault:""`
	StepDelay time.Duration `env:"MENAVKY_STEP_DELAY" envDefault:"550ms"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StepDelay < 0 {
		return Config{}, fmt.Errorf("MENAVKY_STEP_DELAY must not be negative, got %s", cfg.StepDelay)
	}
	return cfg, nil
}
