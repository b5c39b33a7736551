package session

// Store kinds accepted by configuration
const (
	StoreKindMemory = "memory"
	StoreKindLRU    = "lru"
)

// ==================== Error Messages ====================

const (
	ErrMsgSessionNotFoundFmt  = "session %s: %w"
	ErrMsgDuplicateSessionFmt = "session %s already exists: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgSessionStored  = "Session stored"
	LogMsgSessionDeleted = "Session deleted"
)
