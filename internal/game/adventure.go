package game

import (
	"context"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/economy"
	"github.com/osse101/MuForge_Go/internal/event"
	"github.com/osse101/MuForge_Go/internal/logger"
)

// Search scours the current location for scrap and a credit bonus
func (s *service) Search(ctx context.Context, sessionID string) (*SearchResult, error) {
	ctx = logger.WithSessionID(ctx, sessionID)
	logger.FromContext(ctx).Info(LogMsgActionCalled, "action", ActionSearch)

	var result *SearchResult
	err := s.store.Update(ctx, sessionID, func(sess *domain.Session) error {
		res := s.loot.Search(ctx, sess.Rand, sess.Player)
		result = &SearchResult{SearchResult: *res, Player: sess.Player.Clone()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.SearchPerformed, sessionID, "", result.CreditsGained, economy.SourceSearchBonus)
	return result, nil
}

// StartEncounter begins a fight, replacing any encounter in progress
func (s *service) StartEncounter(ctx context.Context, sessionID string) (*EncounterResult, error) {
	ctx = logger.WithSessionID(ctx, sessionID)
	logger.FromContext(ctx).Info(LogMsgActionCalled, "action", ActionAdventure)

	var result *EncounterResult
	err := s.store.Update(ctx, sessionID, func(sess *domain.Session) error {
		res := s.combat.StartEncounter(ctx, sess)
		result = &EncounterResult{EncounterResult: *res, Player: sess.Player.Clone()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.EncounterStarted, sessionID, "", 0, "")
	return result, nil
}

// Attack strikes one enemy with the client-supplied power
func (s *service) Attack(ctx context.Context, sessionID string, enemyID, attackPower int) (*AttackResult, error) {
	ctx = logger.WithSessionID(ctx, sessionID)
	logger.FromContext(ctx).Info(LogMsgActionCalled, "action", ActionAttack,
		"enemy_id", enemyID, "attack_power", attackPower)

	var result *AttackResult
	err := s.store.Update(ctx, sessionID, func(sess *domain.Session) error {
		res, err := s.combat.ResolveAttack(ctx, sess, enemyID, attackPower)
		if err != nil {
			return err
		}
		result = &AttackResult{AttackResult: *res, Player: sess.Player.Clone()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Defeated != nil {
		s.publish(ctx, event.EnemyDefeated, sessionID, result.Defeated.Name, result.CreditsGained, economy.SourceCombatReward)
	}
	switch {
	case result.CombatWon:
		s.publish(ctx, event.EncounterWon, sessionID, "", 0, "")
	case result.PlayerDead:
		s.publish(ctx, event.PlayerDefeated, sessionID, "", 0, "")
	}
	return result, nil
}

// ClaimLoot moves the unclaimed manifest into the player and clears it
func (s *service) ClaimLoot(ctx context.Context, sessionID string) (*ClaimResult, error) {
	ctx = logger.WithSessionID(ctx, sessionID)
	logger.FromContext(ctx).Info(LogMsgActionCalled, "action", ActionClaim)

	var result *ClaimResult
	err := s.store.Update(ctx, sessionID, func(sess *domain.Session) error {
		res := s.loot.Claim(ctx, sess.Player, sess.UnclaimedLoot)
		sess.UnclaimedLoot = domain.LootManifest{}
		result = &ClaimResult{ClaimResult: *res, Player: sess.Player.Clone()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.LootClaimed, sessionID, "", result.CreditsGained, economy.SourceLootClaim)
	return result, nil
}
