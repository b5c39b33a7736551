package economy

import (
	"context"
	"fmt"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/logger"
)

// Purchase buys a single unit of itemName from the fixed price table.
// Buying the special weapon resets its durability to the starting charge count.
func (s *service) Purchase(ctx context.Context, player *domain.Player, itemName string) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, "item", itemName, "credits", player.Credits)

	cost, ok := s.tables.PriceOf(itemName)
	if !ok {
		return nil, fmt.Errorf(ErrMsgItemNotPurchasableFmt, itemName, domain.ErrItemNotPurchasable)
	}
	if err := checkFunds(player, cost); err != nil {
		return nil, err
	}

	player.Credits -= cost
	player.Inventory = append(player.Inventory, domain.ItemStack{Name: itemName, Qty: 1})
	if itemName == s.tables.SpecialWeapon {
		player.PlasmaDurability = s.tables.SpecialWeaponCharge
	}

	log.Info(LogMsgItemPurchased, "item", itemName, "cost", cost, "balance", player.Credits)
	return &PurchaseResult{
		ItemName: itemName,
		Cost:     cost,
		Message:  fmt.Sprintf(MsgPurchasedFmt, itemName, cost),
	}, nil
}
