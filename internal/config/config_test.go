package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWithEnv(map[string]string{})

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "http://localhost:5000", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 0, cfg.HTTPMaxRetries)
	assert.Equal(t, 30*time.Second, cfg.CBTimeout)
	assert.Equal(t, uint32(5), cfg.CBMinRequests)
	assert.InDelta(t, 0.5, cfg.CBFailureRatio, 1e-9)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Equal(t, ".fajr/storage.json", cfg.StoragePath)
	assert.Equal(t, "default", cfg.StorageProfile)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 168, cfg.StorageTTL)
	assert.Equal(t, 168*time.Hour, cfg.StorageTTLDuration())
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, int64(0), cfg.TaxRateBPS)
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, "localhost:4318", cfg.OTLPEndpoint)
	assert.InDelta(t, 1.0, cfg.TracingSampleRate, 1e-9)
	assert.Equal(t, "₹", cfg.CurrencySymbol)
}

func TestLoad_FromProcessEnv(t *testing.T) {
	t.Setenv("STOREFRONT_API_URL", "https://fajr.example.com")
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis.prod:6380")
	t.Setenv("TAX_RATE_BPS", "1800")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://fajr.example.com", cfg.APIURL)
	assert.Equal(t, BackendRedis, cfg.StorageBackend)
	assert.Equal(t, "redis.prod:6380", cfg.RedisAddr)
	assert.Equal(t, int64(1800), cfg.TaxRateBPS)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"relative api url", map[string]string{"STOREFRONT_API_URL": "localhost"}, "invalid STOREFRONT_API_URL"},
		{"zero timeout", map[string]string{"STOREFRONT_HTTP_TIMEOUT": "0s"}, "STOREFRONT_HTTP_TIMEOUT must be positive"},
		{"negative retries", map[string]string{"STOREFRONT_HTTP_MAX_RETRIES": "-1"}, "must not be negative"},
		{"breaker ratio zero", map[string]string{"STOREFRONT_CB_FAILURE_RATIO": "0"}, "STOREFRONT_CB_FAILURE_RATIO must be in (0, 1]"},
		{"breaker ratio above one", map[string]string{"STOREFRONT_CB_FAILURE_RATIO": "1.5"}, "STOREFRONT_CB_FAILURE_RATIO must be in (0, 1]"},
		{"unknown backend", map[string]string{"STORAGE_BACKEND": "sqlite"}, "unknown STORAGE_BACKEND"},
		{"negative ttl", map[string]string{"STORAGE_TTL_HOURS": "-2"}, "STORAGE_TTL_HOURS must not be negative"},
		{"tax above 100%", map[string]string{"TAX_RATE_BPS": "10001"}, "TAX_RATE_BPS must be between 0 and 10000"},
		{"negative tax", map[string]string{"TAX_RATE_BPS": "-5"}, "TAX_RATE_BPS must be between 0 and 10000"},
		{"sample rate above one", map[string]string{"TRACING_SAMPLE_RATE": "1.2"}, "TRACING_SAMPLE_RATE must be in [0, 1]"},
		{"negative sample rate", map[string]string{"TRACING_SAMPLE_RATE": "-0.1"}, "TRACING_SAMPLE_RATE must be in [0, 1]"},
		{"bad duration", map[string]string{"SEARCH_DEBOUNCE": "soon"}, "load storefront config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadWithEnv(tt.env)

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_BreakerRatioOfOneAllowed(t *testing.T) {
	cfg, err := LoadWithEnv(map[string]string{"STOREFRONT_CB_FAILURE_RATIO": "1"})

	require.NoError(t, err)
	assert.InDelta(t, 1.0, cfg.CBFailureRatio, 1e-9)
}
