// Package config loads process configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"muforge"`
	Version     string `env:"VERSION" envDefault:"dev"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`

	// LogDir also writes logs to a timestamped file there; empty logs to stdout only
	LogDir string `env:"LOG_DIR"`

	// GameTablesPath points at a YAML table file; empty uses the built-in tables
	GameTablesPath string `env:"GAME_TABLES_PATH"`

	SessionStore     string        `env:"SESSION_STORE" envDefault:"memory"`
	SessionCacheSize int           `env:"SESSION_CACHE_SIZE" envDefault:"1024"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	DefeatPolicy        string `env:"DEFEAT_POLICY" envDefault:"retain"`
	SearchBonusWhenFull bool   `env:"SEARCH_BONUS_WHEN_FULL" envDefault:"false"`

	// RandomSeed fixes session randomness for reproducible runs; 0 seeds from crypto/rand
	RandomSeed uint64 `env:"RANDOM_SEED" envDefault:"0"`

	EventDeadLetterPath string        `env:"EVENT_DEADLETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`
	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES" envDefault:"5"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// TrustedProxies are peers whose X-Forwarded-For header is believed
	TrustedProxies     []string `env:"TRUSTED_PROXIES" envSeparator:","`
	RateLimitPerWindow int      `env:"RATE_LIMIT_PER_WINDOW" envDefault:"1000"`
	MaxRequestBytes    int64    `env:"MAX_REQUEST_BYTES" envDefault:"1048576"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnvFmt, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the process cannot start with
func (c *Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > MaxPort {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidPortFmt, c.Port))
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidLogFormatFmt, c.LogFormat))
	}
	if !slices.Contains(validSessionStores, c.SessionStore) {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidSessionStoreFmt, c.SessionStore))
	}
	if c.SessionStore == SessionStoreLRU && c.SessionCacheSize <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidCacheSizeFmt, c.SessionCacheSize))
	}
	if c.SessionTTL < 0 {
		errs = append(errs, fmt.Errorf(ErrMsgNegativeDurationFmt, "SESSION_TTL", c.SessionTTL))
	}
	if c.EventMaxRetries < 0 {
		errs = append(errs, fmt.Errorf(ErrMsgNegativeRetriesFmt, c.EventMaxRetries))
	}
	if c.RateLimitPerWindow <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgNonPositiveFmt, "RATE_LIMIT_PER_WINDOW", c.RateLimitPerWindow))
	}
	if c.MaxRequestBytes <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgNonPositiveFmt, "MAX_REQUEST_BYTES", c.MaxRequestBytes))
	}
	if c.EventRetryDelay < 0 {
		errs = append(errs, fmt.Errorf(ErrMsgNegativeDurationFmt, "EVENT_RETRY_DELAY", c.EventRetryDelay))
	}

	return errors.Join(errs...)
}

// Warnings reports settings that are accepted but probably not intended
func (c *Config) Warnings() []string {
	var warnings []string

	if !slices.Contains(validDefeatPolicies, c.DefeatPolicy) {
		warnings = append(warnings, fmt.Sprintf(WarnMsgUnknownDefeatPolicyFmt, c.DefeatPolicy))
	}
	if c.SessionStore == SessionStoreLRU && c.SessionTTL == 0 {
		warnings = append(warnings, WarnMsgNoSessionExpiry)
	}
	if c.SessionStore == SessionStoreMemory && c.Environment == EnvironmentProduction {
		warnings = append(warnings, WarnMsgUnboundedStore)
	}
	if c.RandomSeed != 0 && c.Environment == EnvironmentProduction {
		warnings = append(warnings, WarnMsgFixedSeed)
	}

	return warnings
}
