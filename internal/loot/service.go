// Package loot generates search finds and encounter payouts and moves
// unclaimed manifests into a player's inventory.
package loot

import (
	"context"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/economy"
	"github.com/osse101/MuForge_Go/internal/gamedata"
)

// SearchResult is the outcome of searching the current location
type SearchResult struct {
	OK            bool               `json:"ok"`
	Message       string             `json:"msg"`
	Items         []domain.LootEntry `json:"items"`
	CreditsGained int                `json:"credits_gained"`
	InventoryFull bool               `json:"inventory_full"`
}

// ClaimResult lists what a claim moved into the player's inventory
type ClaimResult struct {
	Claimed       domain.LootManifest `json:"claimed"`
	CreditsGained int                 `json:"credits_gained"`
}

// Service defines the loot generation and claiming interface.
// Methods mutate the player in place; the caller holds the session lock.
type Service interface {
	Search(ctx context.Context, rng domain.Rand, player *domain.Player) *SearchResult
	GenerateEncounterLoot(rng domain.Rand) domain.LootManifest
	Claim(ctx context.Context, player *domain.Player, manifest domain.LootManifest) *ClaimResult
}

// Options holds behaviour switches that are configuration rather than tables
type Options struct {
	// BonusWhenFull grants the search credit bonus even when the inventory is full
	BonusWhenFull bool
}

type service struct {
	tables  *gamedata.Tables
	economy economy.Service
	opts    Options
}

// NewService creates a new loot service. Credits flow through the economy ledger.
func NewService(tables *gamedata.Tables, economySvc economy.Service, opts Options) Service {
	return &service{
		tables:  tables,
		economy: economySvc,
		opts:    opts,
	}
}
