package loot

import (
	"context"
	"slices"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/economy"
	"github.com/osse101/MuForge_Go/internal/logger"
	"github.com/osse101/MuForge_Go/internal/utils"
)

// Claim moves every manifest entry into the player in order.
// Credits go to the balance and scrap is stacked. Anything else is appended
// as its own stack with no stacking and no slot check, so claims can push an
// inventory past the search capacity.
func (s *service) Claim(ctx context.Context, player *domain.Player, manifest domain.LootManifest) *ClaimResult {
	log := logger.FromContext(ctx)
	log.Info(LogMsgClaimCalled, "entries", len(manifest))

	result := &ClaimResult{Claimed: slices.Clone(manifest)}
	if result.Claimed == nil {
		result.Claimed = domain.LootManifest{}
	}

	for _, entry := range manifest {
		switch {
		case entry.Name == domain.ItemCredits:
			result.CreditsGained += s.economy.Grant(ctx, player, entry.Qty, economy.SourceLootClaim)
		case domain.IsScrap(entry.Name):
			player.Inventory = utils.AddStacked(player.Inventory, entry.Name, entry.Qty, s.tables.StackSize)
		default:
			player.Inventory = append(player.Inventory, domain.ItemStack{Name: entry.Name, Qty: entry.Qty})
		}
	}

	log.Info(LogMsgLootClaimed, "entries", len(manifest), "credits_gained", result.CreditsGained)
	return result
}
