package economy

import (
	"fmt"

	"github.com/osse101/MuForge_Go/internal/domain"
)

// checkFunds fails with ErrInsufficientFunds when the player cannot cover cost
func checkFunds(player *domain.Player, cost int) error {
	if player.Credits < cost {
		return fmt.Errorf(ErrMsgInsufficientFundsFmt, cost, player.Credits, domain.ErrInsufficientFunds)
	}
	return nil
}
