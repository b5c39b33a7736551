package loot

import (
	"context"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/economy"
	"github.com/osse101/MuForge_Go/internal/logger"
	"github.com/osse101/MuForge_Go/internal/utils"
)

// Search rolls the search table into the player's inventory and grants a
// small credit bonus. A full inventory finds nothing; whether the bonus is
// still paid depends on Options.BonusWhenFull.
func (s *service) Search(ctx context.Context, rng domain.Rand, player *domain.Player) *SearchResult {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSearchCalled, "slots", len(player.Inventory))

	if s.isFull(player) {
		result := &SearchResult{
			OK:            false,
			Message:       MsgInventoryFull,
			Items:         []domain.LootEntry{},
			InventoryFull: true,
		}
		if s.opts.BonusWhenFull {
			result.CreditsGained = s.grantBonus(ctx, rng, player)
		}
		log.Info(LogMsgSearchInventoryFull, "credits_gained", result.CreditsGained)
		return result
	}

	table := s.tables.Search
	rolls := utils.RandomInt(rng, table.Rolls.Min, table.Rolls.Max)
	found := make([]domain.LootEntry, 0, rolls)
	for range rolls {
		if s.isFull(player) {
			break
		}
		entry := utils.Choose(rng, table.Loot)
		player.Inventory = utils.AddStacked(player.Inventory, entry.Name, entry.Qty, s.tables.StackSize)
		found = append(found, entry)
	}

	gained := s.grantBonus(ctx, rng, player)
	log.Info(LogMsgSearchCompleted, "items", len(found), "credits_gained", gained)
	return &SearchResult{
		OK:            true,
		Message:       MsgSearchFound,
		Items:         found,
		CreditsGained: gained,
	}
}

func (s *service) isFull(player *domain.Player) bool {
	return len(player.Inventory) >= s.tables.MaxInventorySlots
}

func (s *service) grantBonus(ctx context.Context, rng domain.Rand, player *domain.Player) int {
	bonus := s.tables.Search.CreditBonus
	return s.economy.Grant(ctx, player, utils.RandomInt(rng, bonus.Min, bonus.Max), economy.SourceSearchBonus)
}
