package combat

// ==================== Error Messages ====================

const (
	ErrMsgNoActiveCombatFmt = "session %s: %w"
	ErrMsgInvalidEnemyIDFmt = "enemy %d: %w"
	ErrMsgNegativeAttackFmt = "attack power %d must not be negative: %w"
)

// ==================== Player Messages ====================

const (
	MsgEncounterDescription = "You encounter hostile raiders in the outskirts."
	EnemyNameFmt            = "Raider L%d"

	EventStrikeFmt        = "You strike %s for %d damage."
	EventEnemyDefeatedFmt = "%s is defeated!"
	EventLootCreditsFmt   = "You loot %d credits from %s."
	EventEnemyHitsFmt     = "%s hits you for %d damage."
	EventPlayerDefeated   = "You were defeated!"
)

// ==================== Log Messages ====================

const (
	LogMsgStartEncounterCalled = "StartEncounter called"
	LogMsgEncounterStarted     = "Encounter started"
	LogMsgResolveAttackCalled  = "ResolveAttack called"
	LogMsgEnemyDefeated        = "Enemy defeated"
	LogMsgEncounterWon         = "Encounter won"
	LogMsgPlayerDefeated       = "Player defeated"
)
