package game

// ==================== Commands ====================

// CommandDepositScrap is the one command handled without an interpreter
const CommandDepositScrap = "deposit_scrap"

// ==================== Player Messages ====================

const (
	MsgInvalidScrapType   = "Invalid scrap type."
	MsgCommandUnavailable = "Command execution not available"
)

// ==================== Error Messages ====================

const (
	ErrMsgCreateSessionFmt = "failed to create session: %w"
)

// ==================== Action Names ====================

// Action names used in log attributes
const (
	ActionDeposit   = "deposit"
	ActionHeal      = "heal"
	ActionPurchase  = "purchase"
	ActionUnlock    = "unlock"
	ActionSearch    = "search"
	ActionAdventure = "adventure"
	ActionAttack    = "attack"
	ActionClaim     = "claim"
	ActionCommand   = "command"
)

// ==================== Log Messages ====================

const (
	LogMsgActionCalled        = "Game action called"
	LogMsgSessionCreated      = "Session created"
	LogMsgCreateSessionFailed = "Failed to store new session"
	LogMsgSeedFailed          = "Failed to seed session random source"
	LogMsgCommandFailed       = "Command did not succeed"
)
