package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load parses environment variables into the provided struct.
// The struct should use `env` tags to define mappings.
//
// Example:
//
//	type Config struct {
//	    APIURL   string `env:"STOREFRONT_API_URL" envDefault:"http://localhost:5000"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
//	}
func Load(cfg any) error {
	return LoadWithEnv(cfg, nil)
}

// LoadWithEnv parses cfg from the given environment map instead of the process
// environment. A nil map reads the process environment.
func LoadWithEnv(cfg any, environment map[string]string) error {
	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
