package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the CLI settings read from environment variables. Flags
// override these at the command layer.
type Config struct {
	// Env selects the login service deployment.
	Env Environment `env:"CLI_LOGIN_ENV" envDefault:"prod"`

	// Timeout bounds the whole login attempt. The callback handler itself
	// has no deadline; the caller wraps it with this one and tears the
	// server down when it expires.
	Timeout time.Duration `env:"CLI_LOGIN_TIMEOUT" envDefault:"5m"`

	// Verbose enables debug-level logging.
	Verbose bool `env:"CLI_LOGIN_VERBOSE" envDefault:"false"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if !cfg.Env.Valid() {
		return Config{}, fmt.Errorf("CLI_LOGIN_ENV: unknown environment %q", string(cfg.Env))
	}
	return cfg, nil
}
