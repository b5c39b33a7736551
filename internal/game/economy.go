package game

import (
	"context"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/economy"
	"github.com/osse101/MuForge_Go/internal/event"
	"github.com/osse101/MuForge_Go/internal/logger"
)

// DepositScrap converts every stack of one scrap kind into credits
func (s *service) DepositScrap(ctx context.Context, sessionID, scrapType string) (*DepositResult, error) {
	ctx = logger.WithSessionID(ctx, sessionID)
	logger.FromContext(ctx).Info(LogMsgActionCalled, "action", ActionDeposit)

	var result *DepositResult
	err := s.store.Update(ctx, sessionID, func(sess *domain.Session) error {
		res, err := s.economy.Deposit(ctx, sess.Player, scrapType)
		if err != nil {
			return err
		}
		result = &DepositResult{DepositResult: *res, Player: sess.Player.Clone()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.ScrapDeposited, sessionID, result.ScrapType, result.CreditsGained, economy.SourceDeposit)
	return result, nil
}

// Heal restores a fixed amount of health, free of charge
func (s *service) Heal(ctx context.Context, sessionID string) (*HealResult, error) {
	ctx = logger.WithSessionID(ctx, sessionID)
	logger.FromContext(ctx).Info(LogMsgActionCalled, "action", ActionHeal)

	var result *HealResult
	err := s.store.Update(ctx, sessionID, func(sess *domain.Session) error {
		res := s.economy.Heal(ctx, sess.Player)
		result = &HealResult{HealResult: *res, Player: sess.Player.Clone()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.PlayerHealed, sessionID, "", 0, "")
	return result, nil
}

// Purchase buys one unit of an item from the shop
func (s *service) Purchase(ctx context.Context, sessionID, itemName string) (*PurchaseResult, error) {
	ctx = logger.WithSessionID(ctx, sessionID)
	logger.FromContext(ctx).Info(LogMsgActionCalled, "action", ActionPurchase, "item", itemName)

	var result *PurchaseResult
	err := s.store.Update(ctx, sessionID, func(sess *domain.Session) error {
		res, err := s.economy.Purchase(ctx, sess.Player, itemName)
		if err != nil {
			return err
		}
		result = &PurchaseResult{PurchaseResult: *res, Player: sess.Player.Clone()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.ItemPurchased, sessionID, result.ItemName, result.Cost, economy.SourcePurchase)
	return result, nil
}

// UnlockLocation pays to open a locked location
func (s *service) UnlockLocation(ctx context.Context, sessionID, locationID string) (*UnlockResult, error) {
	ctx = logger.WithSessionID(ctx, sessionID)
	logger.FromContext(ctx).Info(LogMsgActionCalled, "action", ActionUnlock, "location", locationID)

	var result *UnlockResult
	err := s.store.Update(ctx, sessionID, func(sess *domain.Session) error {
		res, err := s.economy.UnlockLocation(ctx, sess.Player, locationID)
		if err != nil {
			return err
		}
		result = &UnlockResult{UnlockResult: *res, Player: sess.Player.Clone()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.LocationUnlocked, sessionID, result.LocationID, result.Cost, economy.SourceUnlock)
	return result, nil
}

// GetPrices returns the shop price list
func (s *service) GetPrices(ctx context.Context) []economy.PriceEntry {
	return s.economy.GetPrices(ctx)
}
