package economy

import (
	"context"
	"fmt"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/logger"
)

// Heal restores the table heal amount, capped at max health. Healing is free.
func (s *service) Heal(ctx context.Context, player *domain.Player) *HealResult {
	before := player.Health
	player.Health = min(player.MaxHealth, player.Health+s.tables.HealAmount)

	logger.FromContext(ctx).Info(LogMsgPlayerHealed, "before", before, "after", player.Health)
	return &HealResult{
		Amount:   s.tables.HealAmount,
		Restored: player.Health - before,
		Message:  fmt.Sprintf(MsgHealedFmt, s.tables.HealAmount),
	}
}
