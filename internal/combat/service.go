// Package combat owns the encounter lifecycle: roster generation, the
// player's strike, enemy counter-attacks and victory or defeat.
package combat

import (
	"context"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/economy"
	"github.com/osse101/MuForge_Go/internal/gamedata"
	"github.com/osse101/MuForge_Go/internal/loot"
)

// DefeatPolicy selects what happens to an encounter when the player dies
type DefeatPolicy string

const (
	// DefeatPolicyRetain leaves the surviving enemies in place; further attacks are accepted
	DefeatPolicyRetain DefeatPolicy = "retain"
	// DefeatPolicyClear ends the encounter and forfeits its loot
	DefeatPolicyClear DefeatPolicy = "clear"
)

// Valid reports whether p is a known policy
func (p DefeatPolicy) Valid() bool {
	return p == DefeatPolicyRetain || p == DefeatPolicyClear
}

// EncounterResult describes a freshly started encounter
type EncounterResult struct {
	Enemies     []domain.Enemy      `json:"enemies"`
	Description string              `json:"description"`
	Loot        domain.LootManifest `json:"loot"`
	Messages    []string            `json:"messages"`
}

// AttackResult describes one exchange of blows
type AttackResult struct {
	Events        []string            `json:"events"`
	CombatWon     bool                `json:"combat_won"`
	PlayerDead    bool                `json:"player_dead"`
	Enemies       []domain.Enemy      `json:"enemies"`
	Loot          domain.LootManifest `json:"loot"`
	CreditsGained int                 `json:"credits_gained"`

	// Defeated is the enemy killed by this strike, if any
	Defeated *domain.Enemy `json:"-"`
}

// Service defines the combat interface. Both methods mutate the session in
// place and assume the caller holds the session lock.
type Service interface {
	StartEncounter(ctx context.Context, sess *domain.Session) *EncounterResult
	ResolveAttack(ctx context.Context, sess *domain.Session, enemyID, attackPower int) (*AttackResult, error)
}

// Options holds combat behaviour switches
type Options struct {
	DefeatPolicy DefeatPolicy
}

type service struct {
	tables  *gamedata.Tables
	economy economy.Service
	loot    loot.Service
	policy  DefeatPolicy
}

// NewService creates a new combat service. An unknown policy falls back to retain.
func NewService(tables *gamedata.Tables, economySvc economy.Service, lootSvc loot.Service, opts Options) Service {
	policy := opts.DefeatPolicy
	if !policy.Valid() {
		policy = DefeatPolicyRetain
	}
	return &service{
		tables:  tables,
		economy: economySvc,
		loot:    lootSvc,
		policy:  policy,
	}
}
