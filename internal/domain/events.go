package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.purchased")
const (
	EventTypeSessionCreated   = "session.created"
	EventTypeScrapDeposited   = "scrap.deposited"
	EventTypePlayerHealed     = "player.healed"
	EventTypeItemPurchased    = "item.purchased"
	EventTypeSearchPerformed  = "search.performed"
	EventTypeEncounterStarted = "encounter.started"
	EventTypeEnemyDefeated    = "enemy.defeated"
	EventTypeEncounterWon     = "encounter.won"
	EventTypePlayerDefeated   = "player.defeated"
	EventTypeLootClaimed      = "loot.claimed"
	EventTypeLocationUnlocked = "location.unlocked"
)

// SessionEventPayload is the common payload for session-scoped game events.
// Amount carries credits moved by the action (earned or spent), Item the item
// or location involved when there is one.
type SessionEventPayload struct {
	SessionID string `json:"session_id"`
	Item      string `json:"item,omitempty"`
	Amount    int    `json:"amount"`
	Source    string `json:"source,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
