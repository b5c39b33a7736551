package config

// MaxPort is the largest valid TCP port
const MaxPort = 65535

// Session store kinds
const (
	SessionStoreMemory = "memory"
	SessionStoreLRU    = "lru"
)

// EnvironmentProduction is the ENVIRONMENT value for production deployments
const EnvironmentProduction = "prod"

var (
	validLogFormats     = []string{"text", "json"}
	validSessionStores  = []string{SessionStoreMemory, SessionStoreLRU}
	validDefeatPolicies = []string{"retain", "clear"}
)

// ==================== Error Messages ====================

const (
	ErrMsgParseEnvFmt            = "parse env: %w"
	ErrMsgInvalidPortFmt         = "invalid PORT value: %d"
	ErrMsgInvalidLogFormatFmt    = "invalid LOG_FORMAT %q: expected text or json"
	ErrMsgInvalidSessionStoreFmt = "invalid SESSION_STORE %q: expected memory or lru"
	ErrMsgInvalidCacheSizeFmt    = "SESSION_CACHE_SIZE must be positive for the lru store, got %d"
	ErrMsgNegativeDurationFmt    = "%s must not be negative, got %s"
	ErrMsgNegativeRetriesFmt     = "EVENT_MAX_RETRIES must not be negative, got %d"
	ErrMsgNonPositiveFmt         = "%s must be positive, got %d"
)

// ==================== Warning Messages ====================

const (
	WarnMsgUnknownDefeatPolicyFmt = "DEFEAT_POLICY %q is not recognised; falling back to retain"
	WarnMsgNoSessionExpiry        = "SESSION_TTL is 0 - lru sessions only leave the cache by size eviction"
	WarnMsgUnboundedStore         = "SESSION_STORE=memory never evicts sessions - consider lru in production"
	WarnMsgFixedSeed              = "RANDOM_SEED is set in production - every run replays the same rolls"
)
