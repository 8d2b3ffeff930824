package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	pkgconfig "github.com/Areeb006/FAJR/pkg/config"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config holds all configuration for the storefront client.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`

	// REST API
	APIURL         string        `env:"STOREFRONT_API_URL" envDefault:"http://localhost:5000"`
	HTTPTimeout    time.Duration `env:"STOREFRONT_HTTP_TIMEOUT" envDefault:"10s"`
	HTTPMaxRetries int           `env:"STOREFRONT_HTTP_MAX_RETRIES" envDefault:"0"`

	// Circuit breaker
	CBTimeout      time.Duration `env:"STOREFRONT_CB_TIMEOUT" envDefault:"30s"`
	CBMinRequests  uint32        `env:"STOREFRONT_CB_MIN_REQUESTS" envDefault:"5"`
	CBFailureRatio float64       `env:"STOREFRONT_CB_FAILURE_RATIO" envDefault:"0.5"`

	// Local storage
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"file"`
	StoragePath    string `env:"STORAGE_PATH" envDefault:".fajr/storage.json"`
	StorageProfile string `env:"STORAGE_PROFILE" envDefault:"default"`

	// Redis
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Storage TTL in hours for the redis backend (default: 7 days, 0 = none)
	StorageTTL int `env:"STORAGE_TTL_HOURS" envDefault:"168"`

	// Listing and pricing
	SearchDebounce time.Duration `env:"SEARCH_DEBOUNCE" envDefault:"300ms"`
	TaxRateBPS     int64         `env:"TAX_RATE_BPS" envDefault:"0"`
	CurrencySymbol string        `env:"CURRENCY_SYMBOL" envDefault:"₹"`

	// Tracing of outbound API calls (OTLP over HTTP)
	TracingEnabled    bool    `env:"TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint      string  `env:"OTLP_ENDPOINT" envDefault:"localhost:4318"`
	TracingSampleRate float64 `env:"TRACING_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	return LoadWithEnv(nil)
}

// LoadWithEnv reads configuration from the given map instead of the process
// environment. A nil map reads the process environment.
func LoadWithEnv(environment map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.LoadWithEnv(cfg, environment); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StorageTTLDuration converts StorageTTL to a duration.
func (c *Config) StorageTTLDuration() time.Duration {
	return time.Duration(c.StorageTTL) * time.Hour
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("STOREFRONT_API_URL is required")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid STOREFRONT_API_URL: %q", c.APIURL)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("STOREFRONT_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if c.HTTPMaxRetries < 0 {
		return fmt.Errorf("STOREFRONT_HTTP_MAX_RETRIES must not be negative, got %d", c.HTTPMaxRetries)
	}
	if c.CBTimeout <= 0 {
		return fmt.Errorf("STOREFRONT_CB_TIMEOUT must be positive, got %s", c.CBTimeout)
	}
	if c.CBFailureRatio <= 0 || c.CBFailureRatio > 1 {
		return fmt.Errorf("STOREFRONT_CB_FAILURE_RATIO must be in (0, 1], got %g", c.CBFailureRatio)
	}
	switch c.StorageBackend {
	case BackendMemory, BackendRedis:
	case BackendFile:
		if c.StoragePath == "" {
			return fmt.Errorf("STORAGE_PATH is required for the file backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q: use memory, file or redis", c.StorageBackend)
	}
	if c.StorageTTL < 0 {
		return fmt.Errorf("STORAGE_TTL_HOURS must not be negative, got %d", c.StorageTTL)
	}
	if c.SearchDebounce < 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE must not be negative, got %s", c.SearchDebounce)
	}
	if c.TaxRateBPS < 0 || c.TaxRateBPS > 10000 {
		return fmt.Errorf("TAX_RATE_BPS must be between 0 and 10000, got %d", c.TaxRateBPS)
	}
	if c.TracingSampleRate < 0 || c.TracingSampleRate > 1 {
		return fmt.Errorf("TRACING_SAMPLE_RATE must be in [0, 1], got %v", c.TracingSampleRate)
	}
	if c.TracingEnabled && c.OTLPEndpoint == "" {
		return errors.New("OTLP_ENDPOINT is required when TRACING_ENABLED is set")
	}
	return nil
}
