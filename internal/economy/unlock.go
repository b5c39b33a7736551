package economy

import (
	"context"
	"fmt"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/logger"
)

// UnlockLocation pays the unlock cost of locationID and records it as unlocked.
// Paying again for an already unlocked location is accepted and charged;
// the id is only recorded once.
func (s *service) UnlockLocation(ctx context.Context, player *domain.Player, locationID string) (*UnlockResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUnlockCalled, "location", locationID)

	cost, ok := s.tables.UnlockCostOf(locationID)
	if !ok {
		return nil, fmt.Errorf(ErrMsgUnknownLocationFmt, locationID, domain.ErrUnknownLocation)
	}
	if err := checkFunds(player, cost); err != nil {
		return nil, err
	}

	player.Credits -= cost
	if !player.HasUnlocked(locationID) {
		player.UnlockedLocations = append(player.UnlockedLocations, locationID)
	} else {
		log.Warn(LogMsgAlreadyUnlocked, "location", locationID)
	}

	name := displayName(locationID)
	log.Info(LogMsgLocationUnlocked, "location", locationID, "cost", cost, "balance", player.Credits)
	return &UnlockResult{
		LocationID:  locationID,
		DisplayName: name,
		Cost:        cost,
		Message:     fmt.Sprintf(MsgUnlockedFmt, name),
	}, nil
}
