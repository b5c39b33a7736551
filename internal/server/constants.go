package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertHighRate = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Rate limiting
const (
	RateLimitWindow  = 5 * time.Minute
	HighRateLogEvery = 100
)

// ReadHeaderTimeout bounds how long a client may take to send headers
const ReadHeaderTimeout = 5 * time.Second

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// HTTP header names
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// QuietPaths are probe and scrape endpoints the request logger skips
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// SensitiveHeaders are logged as RedactedValue
var SensitiveHeaders = []string{
	"Authorization",
	"Cookie",
	"X-API-Key",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
