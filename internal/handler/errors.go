package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgSessionNotFoundError  = "Session not found"
	ErrMsgNoActiveCombatError   = "No active combat"
	ErrMsgInvalidEnemyIDError   = "Invalid enemy id"
	ErrMsgInvalidScrapTypeError = "Invalid scrap type."
	ErrMsgNotPurchasableError   = "That item cannot be bought here."
	ErrMsgNotEnoughCreditsError = "Not enough credits."
	ErrMsgUnknownLocationError  = "Unknown locked location."
)

// Health and readiness
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	MsgShuttingDown   = "server is shutting down"
)

// Query parameter names
const (
	QueryParamSessionID   = "session_id"
	QueryParamEnemyID     = "enemy_id"
	QueryParamAttack      = "attack"
	QueryParamLocationID  = "location_id"
	DefaultAttackPower    = 10
	defaultEncodeBufBytes = 512
)

// Log messages
const (
	LogMsgDecodeFailedFmt     = "Failed to decode %s request"
	LogMsgRequestDecodedFmt   = "%s request decoded"
	LogMsgServiceErrorFmt     = "%s failed"
	LogMsgMissingQueryFmt     = "Missing %s query parameter"
	LogMsgInvalidQueryFmt     = "Invalid %s query parameter"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgRequestDetails      = "Request details"
	LogMsgOddLogRequestFields = "LogRequestFields called with odd number of arguments"
)
