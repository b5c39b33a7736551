package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSession_StartingState(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSession("abc", nil, now)

	assert.Equal(t, "abc", s.ID)
	assert.Equal(t, StartingPlayerName, s.Player.Name)
	assert.Equal(t, 100, s.Player.Health)
	assert.Equal(t, 100, s.Player.MaxHealth)
	assert.Equal(t, 1, s.Player.Level)
	assert.Equal(t, 50, s.Player.XPToNext)
	assert.Zero(t, s.Player.Credits)
	assert.Empty(t, s.Player.Inventory)
	assert.Equal(t, "terra", s.Node.ID)
	assert.Nil(t, s.Combat)
	assert.Empty(t, s.UnclaimedLoot)
	assert.Equal(t, now, s.CreatedAt)
}

func TestSession_CloneIsIndependent(t *testing.T) {
	s := NewSession("abc", nil, time.Now())
	s.Player.Inventory = append(s.Player.Inventory, ItemStack{Name: ItemScrap, Qty: 5})
	s.Player.UnlockedLocations = append(s.Player.UnlockedLocations, LocationDeltaBase)
	s.Combat = &Combat{Enemies: []Enemy{{ID: 0, Name: "Raider L1", Health: 50}}}
	s.UnclaimedLoot = LootManifest{{Name: ItemCredits, Qty: 20}}
	s.AddMessage("hello")

	c := s.Clone()
	c.Player.Inventory[0].Qty = 99
	c.Player.UnlockedLocations[0] = "elsewhere"
	c.Combat.Enemies[0].Health = 1
	c.UnclaimedLoot[0].Qty = 1
	c.Messages[0] = "changed"
	c.Player.Credits = 500

	assert.Equal(t, 5, s.Player.Inventory[0].Qty)
	assert.Equal(t, LocationDeltaBase, s.Player.UnlockedLocations[0])
	assert.Equal(t, 50, s.Combat.Enemies[0].Health)
	assert.Equal(t, 20, s.UnclaimedLoot[0].Qty)
	assert.Equal(t, "hello", s.Messages[0])
	assert.Zero(t, s.Player.Credits)
}

func TestCombat_FindAndRemoveEnemy(t *testing.T) {
	c := &Combat{Enemies: []Enemy{{ID: 0}, {ID: 1}, {ID: 2}}}

	assert.Equal(t, 1, c.FindEnemy(1))
	assert.Equal(t, -1, c.FindEnemy(7))

	c.RemoveEnemy(0)
	// ids survive removal; index no longer matches id
	assert.Equal(t, 0, c.FindEnemy(1))
	assert.Equal(t, 1, c.FindEnemy(2))
	assert.Equal(t, -1, c.FindEnemy(0))

	var none *Combat
	assert.Equal(t, -1, none.FindEnemy(0))
}
