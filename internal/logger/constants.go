package logger

// Context Keys
const (
	ContextKeyRequestID = "request_id"
	ContextKeySessionID = "session_id"
)

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "muforge"
	DefaultVersion     = "dev"
)

// Environment String Values
const (
	EnvironmentDev  = "dev"
	EnvironmentTest = "test"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeySessionID   = "session_id"
)
