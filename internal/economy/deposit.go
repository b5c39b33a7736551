package economy

import (
	"context"
	"fmt"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/logger"
	"github.com/osse101/MuForge_Go/internal/utils"
)

// Deposit converts every stack of scrapType into credits at the table rate.
// Only kinds listed in the deposit rate table are accepted.
func (s *service) Deposit(ctx context.Context, player *domain.Player, scrapType string) (*DepositResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDepositCalled, "scrap_type", scrapType)

	rate, ok := s.tables.DepositRateOf(scrapType)
	if !ok {
		return nil, fmt.Errorf(ErrMsgInvalidScrapTypeFmt, scrapType, domain.ErrInvalidItemKind)
	}

	total := utils.CountItem(player.Inventory, scrapType)
	player.Inventory = utils.RemoveItem(player.Inventory, scrapType)
	gained := total * rate
	player.Credits += gained

	log.Info(LogMsgScrapDeposited, "scrap_type", scrapType, "units", total, "credits", gained)
	return &DepositResult{
		ScrapType:     scrapType,
		Deposited:     total,
		CreditsGained: gained,
		Message:       fmt.Sprintf(MsgDepositedFmt, total, scrapType, gained),
	}, nil
}
