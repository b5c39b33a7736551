package loot

import (
	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/utils"
)

// GenerateEncounterLoot rolls the victory payout for a new encounter.
// Entries are always Credits, Scrap and Iron Scrap in that order; a zero
// roll is kept so the manifest shape is stable.
func (s *service) GenerateEncounterLoot(rng domain.Rand) domain.LootManifest {
	table := s.tables.Encounter
	return domain.LootManifest{
		{Name: domain.ItemCredits, Qty: utils.RandomInt(rng, table.LootCredits.Min, table.LootCredits.Max)},
		{Name: domain.ItemScrap, Qty: utils.RandomInt(rng, table.LootScrap.Min, table.LootScrap.Max)},
		{Name: domain.ItemIronScrap, Qty: utils.RandomInt(rng, table.LootIronScrap.Min, table.LootIronScrap.Max)},
	}
}
