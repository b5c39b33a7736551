package combat

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/logger"
	"github.com/osse101/MuForge_Go/internal/utils"
)

// StartEncounter wears the special weapon, rolls a fresh roster and its
// victory payout, and installs both on the session. An active encounter is
// replaced.
func (s *service) StartEncounter(ctx context.Context, sess *domain.Session) *EncounterResult {
	log := logger.FromContext(ctx)
	log.Info(LogMsgStartEncounterCalled, "session_id", sess.ID, "replacing", sess.Combat != nil)

	messages := s.applyDurability(sess)

	enemies := s.generateEnemies(sess.Rand, sess.Player.Level)
	manifest := s.loot.GenerateEncounterLoot(sess.Rand)

	sess.Combat = &domain.Combat{Enemies: enemies}
	sess.UnclaimedLoot = manifest

	log.Info(LogMsgEncounterStarted, "session_id", sess.ID, "enemies", len(enemies))
	return &EncounterResult{
		Enemies:     slices.Clone(enemies),
		Description: MsgEncounterDescription,
		Loot:        slices.Clone(manifest),
		Messages:    messages,
	}
}

// applyDurability spends one charge of the special weapon if it is carried.
// The last-charge warning is given on the same adventure that breaks it.
func (s *service) applyDurability(sess *domain.Session) []string {
	player := sess.Player
	messages := []string{}
	if !utils.HasItem(player.Inventory, s.tables.SpecialWeapon) {
		return messages
	}

	if player.PlasmaDurability == 1 {
		messages = append(messages, domain.MsgPlasmaLastCharge)
	}
	if player.PlasmaDurability > 0 {
		player.PlasmaDurability--
		if player.PlasmaDurability == 0 {
			player.Inventory = utils.RemoveItem(player.Inventory, s.tables.SpecialWeapon)
			messages = append(messages, domain.MsgPlasmaBroke)
		}
	}

	for _, msg := range messages {
		sess.AddMessage(msg)
	}
	return messages
}

func (s *service) generateEnemies(rng domain.Rand, playerLevel int) []domain.Enemy {
	table := s.tables.Encounter
	count := utils.RandomInt(rng, table.Enemies.Min, table.Enemies.Max)

	enemies := make([]domain.Enemy, 0, count)
	for i := range count {
		level := utils.RandomInt(rng, playerLevel, playerLevel+1)
		maxHealth := table.BaseHealth + level*table.HealthPerLevel
		enemies = append(enemies, domain.Enemy{
			ID:           i,
			Name:         fmt.Sprintf(EnemyNameFmt, level),
			Health:       maxHealth,
			MaxHealth:    maxHealth,
			Attack:       table.BaseAttack + level*table.AttackPerLevel,
			Level:        level,
			CreditReward: table.BaseReward + level*table.RewardPerLevel,
		})
	}
	return enemies
}
