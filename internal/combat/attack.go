package combat

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/economy"
	"github.com/osse101/MuForge_Go/internal/logger"
	"github.com/osse101/MuForge_Go/internal/utils"
)

// ResolveAttack strikes the enemy with the given id for attackPower damage.
// A killed enemy pays its reward and leaves the roster. Survivors answer with
// one counter-attack scaled from attackPower. An empty roster is a victory
// and the pre-rolled loot becomes claimable.
func (s *service) ResolveAttack(ctx context.Context, sess *domain.Session, enemyID, attackPower int) (*AttackResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgResolveAttackCalled, "session_id", sess.ID, "enemy_id", enemyID, "attack", attackPower)

	if sess.Combat == nil {
		return nil, fmt.Errorf(ErrMsgNoActiveCombatFmt, sess.ID, domain.ErrNoActiveCombat)
	}
	idx := sess.Combat.FindEnemy(enemyID)
	if idx < 0 {
		return nil, fmt.Errorf(ErrMsgInvalidEnemyIDFmt, enemyID, domain.ErrInvalidEnemyID)
	}
	if attackPower < 0 {
		return nil, fmt.Errorf(ErrMsgNegativeAttackFmt, attackPower, domain.ErrInvalidInput)
	}

	player := sess.Player
	combat := sess.Combat
	result := &AttackResult{Events: []string{}, Loot: domain.LootManifest{}}

	target := &combat.Enemies[idx]
	target.Health = max(0, target.Health-attackPower)
	result.Events = append(result.Events, fmt.Sprintf(EventStrikeFmt, target.Name, attackPower))

	if target.Health == 0 {
		defeated := *target
		result.Defeated = &defeated
		result.Events = append(result.Events, fmt.Sprintf(EventEnemyDefeatedFmt, defeated.Name))
		if gained := s.economy.Grant(ctx, player, defeated.CreditReward, economy.SourceCombatReward); gained > 0 {
			result.CreditsGained = gained
			result.Events = append(result.Events, fmt.Sprintf(EventLootCreditsFmt, gained, defeated.Name))
		}
		combat.RemoveEnemy(idx)
		log.Info(LogMsgEnemyDefeated, "session_id", sess.ID, "enemy_id", defeated.ID, "reward", defeated.CreditReward)
	}

	if len(combat.Enemies) == 0 {
		result.CombatWon = true
		result.Enemies = []domain.Enemy{}
		result.Loot = slices.Clone(sess.UnclaimedLoot)
		sess.Combat = nil
		log.Info(LogMsgEncounterWon, "session_id", sess.ID)
		return result, nil
	}

	attacker := utils.Choose(sess.Rand, combat.Enemies)
	damage := s.counterDamage(attackPower)
	player.Health = max(0, player.Health-damage)
	result.Events = append(result.Events, fmt.Sprintf(EventEnemyHitsFmt, attacker.Name, damage))

	if player.IsDead() {
		result.PlayerDead = true
		result.Events = append(result.Events, EventPlayerDefeated)
		result.Enemies = slices.Clone(combat.Enemies)
		if s.policy == DefeatPolicyClear {
			sess.Combat = nil
			sess.UnclaimedLoot = domain.LootManifest{}
		}
		log.Info(LogMsgPlayerDefeated, "session_id", sess.ID, "policy", string(s.policy))
		return result, nil
	}

	result.Enemies = slices.Clone(combat.Enemies)
	return result, nil
}

// counterDamage scales enemy damage from the player's own attack input,
// not from the enemy's attack stat
func (s *service) counterDamage(attackPower int) int {
	table := s.tables.Encounter
	return max(table.MinCounterDamage, int(float64(attackPower)*table.CounterRatio))
}
