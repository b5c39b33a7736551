package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/MuForge_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Game event types, mirrored from the domain constants for subscribers
const (
	SessionCreated   Type = domain.EventTypeSessionCreated
	ScrapDeposited   Type = domain.EventTypeScrapDeposited
	PlayerHealed     Type = domain.EventTypePlayerHealed
	ItemPurchased    Type = domain.EventTypeItemPurchased
	SearchPerformed  Type = domain.EventTypeSearchPerformed
	EncounterStarted Type = domain.EventTypeEncounterStarted
	EnemyDefeated    Type = domain.EventTypeEnemyDefeated
	EncounterWon     Type = domain.EventTypeEncounterWon
	PlayerDefeated   Type = domain.EventTypePlayerDefeated
	LootClaimed      Type = domain.EventTypeLootClaimed
	LocationUnlocked Type = domain.EventTypeLocationUnlocked
)

// GameTypes lists every game event type
var GameTypes = []Type{
	SessionCreated,
	ScrapDeposited,
	PlayerHealed,
	ItemPurchased,
	SearchPerformed,
	EncounterStarted,
	EnemyDefeated,
	EncounterWon,
	PlayerDefeated,
	LootClaimed,
	LocationUnlocked,
}

// NewSessionEvent creates a game event for one session.
// item and source may be empty; amount is the credits moved by the action.
func NewSessionEvent(eventType Type, sessionID, item string, amount int, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: domain.SessionEventPayload{
			SessionID: sessionID,
			Item:      item,
			Amount:    amount,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeySessionID: sessionID,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
