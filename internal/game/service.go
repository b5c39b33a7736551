// Package game is the action surface of the engine. Each verb resolves a
// session through the store, runs the owning component under the session
// lock, publishes a domain event and returns a snapshot of the new state.
package game

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/osse101/MuForge_Go/internal/combat"
	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/economy"
	"github.com/osse101/MuForge_Go/internal/event"
	"github.com/osse101/MuForge_Go/internal/loot"
	"github.com/osse101/MuForge_Go/internal/session"
)

// State is the client view of a session
type State struct {
	SessionID string              `json:"session_id"`
	Player    *domain.Player      `json:"player"`
	Node      domain.Node         `json:"node"`
	Combat    *domain.Combat      `json:"combat"`
	Loot      domain.LootManifest `json:"loot"`
	Messages  []string            `json:"messages"`
}

// DepositResult is a deposit plus the updated player
type DepositResult struct {
	economy.DepositResult
	Player *domain.Player `json:"player"`
}

// HealResult is a heal plus the updated player
type HealResult struct {
	economy.HealResult
	Player *domain.Player `json:"player"`
}

// PurchaseResult is a purchase plus the updated player
type PurchaseResult struct {
	economy.PurchaseResult
	Player *domain.Player `json:"player"`
}

// UnlockResult is an unlock plus the updated player
type UnlockResult struct {
	economy.UnlockResult
	Player *domain.Player `json:"player"`
}

// SearchResult is a search plus the updated player
type SearchResult struct {
	loot.SearchResult
	Player *domain.Player `json:"player"`
}

// EncounterResult is a new encounter plus the updated player
type EncounterResult struct {
	combat.EncounterResult
	Player *domain.Player `json:"player"`
}

// AttackResult is one exchange of blows plus the updated player
type AttackResult struct {
	combat.AttackResult
	Player *domain.Player `json:"player"`
}

// ClaimResult is a loot claim plus the updated player
type ClaimResult struct {
	loot.ClaimResult
	Player *domain.Player `json:"player"`
}

// Service defines the player action interface
type Service interface {
	CreateSession(ctx context.Context) (string, error)
	GetState(ctx context.Context, sessionID string) (*State, error)

	DepositScrap(ctx context.Context, sessionID, scrapType string) (*DepositResult, error)
	Heal(ctx context.Context, sessionID string) (*HealResult, error)
	Purchase(ctx context.Context, sessionID, itemName string) (*PurchaseResult, error)
	UnlockLocation(ctx context.Context, sessionID, locationID string) (*UnlockResult, error)
	GetPrices(ctx context.Context) []economy.PriceEntry

	Search(ctx context.Context, sessionID string) (*SearchResult, error)
	StartEncounter(ctx context.Context, sessionID string) (*EncounterResult, error)
	Attack(ctx context.Context, sessionID string, enemyID, attackPower int) (*AttackResult, error)
	ClaimLoot(ctx context.Context, sessionID string) (*ClaimResult, error)

	ExecuteCommand(ctx context.Context, sessionID, command string, args []string) (*CommandResult, error)
}

// Options holds the collaborators that vary between production and tests
type Options struct {
	// Seed fixes the seed every session source derives from; zero draws a
	// fresh crypto seed per session
	Seed uint64

	// RandSource overrides session random sources entirely
	RandSource func() domain.Rand

	// Interpreter handles commands other than deposit_scrap
	Interpreter CommandInterpreter

	// Now is the clock used for session timestamps
	Now func() time.Time
}

type service struct {
	store       session.Store
	economy     economy.Service
	loot        loot.Service
	combat      combat.Service
	publisher   event.Publisher
	interpreter CommandInterpreter
	randSource  func() domain.Rand
	now         func() time.Time
	seed        uint64
	streams     atomic.Uint64
}

// NewService creates a new game service
func NewService(
	store session.Store,
	economySvc economy.Service,
	lootSvc loot.Service,
	combatSvc combat.Service,
	publisher event.Publisher,
	opts Options,
) Service {
	s := &service{
		store:       store,
		economy:     economySvc,
		loot:        lootSvc,
		combat:      combatSvc,
		publisher:   publisher,
		interpreter: opts.Interpreter,
		randSource:  opts.RandSource,
		now:         opts.Now,
		seed:        opts.Seed,
	}
	if s.interpreter == nil {
		s.interpreter = unavailableInterpreter{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// publish emits a session event. Delivery failures are handled by the publisher.
func (s *service) publish(ctx context.Context, eventType event.Type, sessionID, item string, amount int, source string) {
	s.publisher.PublishWithRetry(ctx, event.NewSessionEvent(eventType, sessionID, item, amount, source))
}

func stateOf(sess *domain.Session) *State {
	c := sess.Clone()
	return &State{
		SessionID: c.ID,
		Player:    c.Player,
		Node:      c.Node,
		Combat:    c.Combat,
		Loot:      c.UnclaimedLoot,
		Messages:  c.Messages,
	}
}
