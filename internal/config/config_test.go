package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "SERVICE_NAME", "VERSION", "ENVIRONMENT", "LOG_DIR",
	"GAME_TABLES_PATH", "SESSION_STORE", "SESSION_CACHE_SIZE", "SESSION_TTL",
	"DEFEAT_POLICY", "SEARCH_BONUS_WHEN_FULL", "RANDOM_SEED",
	"EVENT_DEADLETTER_PATH", "EVENT_MAX_RETRIES", "EVENT_RETRY_DELAY", "SHUTDOWN_TIMEOUT",
	"TRUSTED_PROXIES", "RATE_LIMIT_PER_WINDOW", "MAX_REQUEST_BYTES",
}

// clearEnvVars unsets every variable Load reads and restores them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func validConfig() *Config {
	return &Config{
		Port:             8080,
		LogFormat:        "text",
		SessionStore:     SessionStoreMemory,
		SessionCacheSize: 1024,
		SessionTTL:       30 * time.Minute,
		DefeatPolicy:     "retain",
		EventMaxRetries:  5,
		EventRetryDelay:  2 * time.Second,

		RateLimitPerWindow: 1000,
		MaxRequestBytes:    1 << 20,
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "muforge", cfg.ServiceName)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Empty(t, cfg.GameTablesPath)
		assert.Empty(t, cfg.LogDir)
		assert.Equal(t, SessionStoreMemory, cfg.SessionStore)
		assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
		assert.Equal(t, "retain", cfg.DefeatPolicy)
		assert.False(t, cfg.SearchBonusWhenFull)
		assert.Zero(t, cfg.RandomSeed)
		assert.Equal(t, 5, cfg.EventMaxRetries)
		assert.Equal(t, 2*time.Second, cfg.EventRetryDelay)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
		assert.Empty(t, cfg.TrustedProxies)
		assert.Equal(t, 1000, cfg.RateLimitPerWindow)
		assert.Equal(t, int64(1<<20), cfg.MaxRequestBytes)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "staging")
		t.Setenv("GAME_TABLES_PATH", "configs/game_tables.yaml")
		t.Setenv("SESSION_STORE", "lru")
		t.Setenv("SESSION_CACHE_SIZE", "64")
		t.Setenv("SESSION_TTL", "5m")
		t.Setenv("DEFEAT_POLICY", "clear")
		t.Setenv("SEARCH_BONUS_WHEN_FULL", "true")
		t.Setenv("RANDOM_SEED", "42")
		t.Setenv("EVENT_MAX_RETRIES", "0")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "staging", cfg.Environment)
		assert.Equal(t, "configs/game_tables.yaml", cfg.GameTablesPath)
		assert.Equal(t, SessionStoreLRU, cfg.SessionStore)
		assert.Equal(t, 64, cfg.SessionCacheSize)
		assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
		assert.Equal(t, "clear", cfg.DefeatPolicy)
		assert.True(t, cfg.SearchBonusWhenFull)
		assert.Equal(t, uint64(42), cfg.RandomSeed)
		assert.Equal(t, 0, cfg.EventMaxRetries)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse env")
	})

	t.Run("returns error for invalid duration", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("SESSION_TTL", "forever")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("returns validation error for unknown store", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("SESSION_STORE", "redis")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "SESSION_STORE")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectedErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Port = 0 }, "invalid PORT"},
		{"port too large", func(c *Config) { c.Port = 70000 }, "invalid PORT"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
		{"session store", func(c *Config) { c.SessionStore = "redis" }, "SESSION_STORE"},
		{"lru without size", func(c *Config) {
			c.SessionStore = SessionStoreLRU
			c.SessionCacheSize = 0
		}, "SESSION_CACHE_SIZE"},
		{"memory ignores size", func(c *Config) { c.SessionCacheSize = 0 }, ""},
		{"negative ttl", func(c *Config) { c.SessionTTL = -time.Second }, "SESSION_TTL"},
		{"negative retries", func(c *Config) { c.EventMaxRetries = -1 }, "EVENT_MAX_RETRIES"},
		{"zero rate limit", func(c *Config) { c.RateLimitPerWindow = 0 }, "RATE_LIMIT_PER_WINDOW"},
		{"zero body limit", func(c *Config) { c.MaxRequestBytes = 0 }, "MAX_REQUEST_BYTES"},
		{"negative retry delay", func(c *Config) { c.EventRetryDelay = -time.Second }, "EVENT_RETRY_DELAY"},
		{"unknown defeat policy is only a warning", func(c *Config) { c.DefeatPolicy = "explode" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.Port = -1
	cfg.LogFormat = "xml"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestWarnings(t *testing.T) {
	t.Run("clean config has no warnings", func(t *testing.T) {
		assert.Empty(t, validConfig().Warnings())
	})

	t.Run("unknown defeat policy", func(t *testing.T) {
		cfg := validConfig()
		cfg.DefeatPolicy = "explode"

		warnings := cfg.Warnings()

		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "falling back to retain")
	})

	t.Run("lru without ttl", func(t *testing.T) {
		cfg := validConfig()
		cfg.SessionStore = SessionStoreLRU
		cfg.SessionTTL = 0

		assert.Equal(t, []string{WarnMsgNoSessionExpiry}, cfg.Warnings())
	})

	t.Run("production with memory store and fixed seed", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = EnvironmentProduction
		cfg.RandomSeed = 7

		assert.Equal(t, []string{WarnMsgUnboundedStore, WarnMsgFixedSeed}, cfg.Warnings())
	})
}
