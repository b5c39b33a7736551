package loot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/economy"
	"github.com/osse101/MuForge_Go/internal/gamedata"
	"github.com/osse101/MuForge_Go/internal/testing/fakerand"
	"github.com/osse101/MuForge_Go/internal/utils"
)

func newTestService(opts Options) Service {
	tables := gamedata.Default()
	return NewService(tables, economy.NewService(tables), opts)
}

func fillInventory(n int) []domain.ItemStack {
	names := []string{
		domain.ItemArmor, domain.ItemWeapon, domain.ItemBlaster,
		domain.ItemEnergyShield, domain.ItemChargeCell, domain.ItemEnergyCell,
	}
	inv := make([]domain.ItemStack, 0, n)
	for i := range n {
		inv = append(inv, domain.ItemStack{Name: names[i%len(names)], Qty: 1})
	}
	return inv
}

// =============================================================================
// Search
// =============================================================================

func TestSearch_ForcedScrapDrawsStack(t *testing.T) {
	// ARRANGE
	svc := newTestService(Options{})
	player := domain.NewPlayer()
	// two rolls, Scrap, Scrap, bonus 5+7
	rng := fakerand.New(1, 0, 0, 7)

	// ACT
	result := svc.Search(context.Background(), rng, player)

	// ASSERT
	assert.True(t, result.OK)
	assert.False(t, result.InventoryFull)
	assert.Equal(t, []domain.ItemStack{{Name: domain.ItemScrap, Qty: 2}}, player.Inventory)
	assert.Equal(t, []domain.LootEntry{
		{Name: domain.ItemScrap, Qty: 1},
		{Name: domain.ItemScrap, Qty: 1},
	}, result.Items)
	assert.Equal(t, 12, result.CreditsGained)
	assert.Equal(t, 12, player.Credits)
	assert.Zero(t, rng.Remaining())
}

func TestSearch_FullInventory(t *testing.T) {
	svc := newTestService(Options{})
	player := domain.NewPlayer()
	player.Inventory = fillInventory(domain.DefaultMaxInventorySlots)
	before := player.Clone()
	rng := fakerand.New()

	result := svc.Search(context.Background(), rng, player)

	assert.False(t, result.OK)
	assert.True(t, result.InventoryFull)
	assert.Empty(t, result.Items)
	assert.Zero(t, result.CreditsGained)
	assert.Equal(t, MsgInventoryFull, result.Message)
	assert.Equal(t, before, player)
}

func TestSearch_FullInventoryWithBonusGate(t *testing.T) {
	svc := newTestService(Options{BonusWhenFull: true})
	player := domain.NewPlayer()
	player.Inventory = fillInventory(domain.DefaultMaxInventorySlots)

	result := svc.Search(context.Background(), fakerand.New(3), player)

	assert.True(t, result.InventoryFull)
	assert.Empty(t, result.Items)
	assert.Equal(t, 8, result.CreditsGained)
	assert.Equal(t, 8, player.Credits)
	assert.Len(t, player.Inventory, domain.DefaultMaxInventorySlots)
}

func TestSearch_StopsWhenFilledMidDraw(t *testing.T) {
	svc := newTestService(Options{})
	player := domain.NewPlayer()
	player.Inventory = fillInventory(domain.DefaultMaxInventorySlots - 1)
	// two rolls, first draw Medpack opens the last slot, bonus 5
	rng := fakerand.New(1, 4, 0)

	result := svc.Search(context.Background(), rng, player)

	assert.True(t, result.OK)
	require.Len(t, result.Items, 1)
	assert.Equal(t, domain.ItemMedpack, result.Items[0].Name)
	assert.Len(t, player.Inventory, domain.DefaultMaxInventorySlots)
	assert.Equal(t, 5, result.CreditsGained)
	assert.Zero(t, rng.Remaining())
}

func TestSearch_RandomRunsStayInBounds(t *testing.T) {
	svc := newTestService(Options{})
	rng := utils.NewRand(42, 7)

	for range 200 {
		player := domain.NewPlayer()
		result := svc.Search(context.Background(), rng, player)

		assert.GreaterOrEqual(t, result.CreditsGained, 5)
		assert.LessOrEqual(t, result.CreditsGained, 25)
		assert.GreaterOrEqual(t, len(result.Items), 1)
		assert.LessOrEqual(t, len(result.Items), 2)
		assert.LessOrEqual(t, len(player.Inventory), len(result.Items))
	}
}

// =============================================================================
// GenerateEncounterLoot
// =============================================================================

func TestGenerateEncounterLoot(t *testing.T) {
	svc := newTestService(Options{})

	manifest := svc.GenerateEncounterLoot(fakerand.New(40, 3, 2))

	assert.Equal(t, domain.LootManifest{
		{Name: domain.ItemCredits, Qty: 60},
		{Name: domain.ItemScrap, Qty: 4},
		{Name: domain.ItemIronScrap, Qty: 2},
	}, manifest)
}

func TestGenerateEncounterLoot_Bounds(t *testing.T) {
	svc := newTestService(Options{})
	rng := utils.NewRand(1, 2)

	for range 200 {
		manifest := svc.GenerateEncounterLoot(rng)

		require.Len(t, manifest, 3)
		assert.GreaterOrEqual(t, manifest[0].Qty, 20)
		assert.LessOrEqual(t, manifest[0].Qty, 60)
		assert.GreaterOrEqual(t, manifest[1].Qty, 1)
		assert.LessOrEqual(t, manifest[1].Qty, 4)
		assert.GreaterOrEqual(t, manifest[2].Qty, 0)
		assert.LessOrEqual(t, manifest[2].Qty, 2)
	}
}

// =============================================================================
// Claim
// =============================================================================

func TestClaim_RoutesEntries(t *testing.T) {
	svc := newTestService(Options{})
	player := domain.NewPlayer()
	player.Credits = 5
	player.Inventory = []domain.ItemStack{{Name: domain.ItemScrap, Qty: 10}}
	manifest := domain.LootManifest{
		{Name: domain.ItemCredits, Qty: 30},
		{Name: domain.ItemScrap, Qty: 70},
		{Name: domain.ItemIronScrap, Qty: 0},
		{Name: domain.ItemMedpack, Qty: 1},
		{Name: domain.ItemMedpack, Qty: 1},
	}

	result := svc.Claim(context.Background(), player, manifest)

	assert.Equal(t, manifest, result.Claimed)
	assert.Equal(t, 30, result.CreditsGained)
	assert.Equal(t, 35, player.Credits)
	assert.Equal(t, []domain.ItemStack{
		{Name: domain.ItemScrap, Qty: 64},
		{Name: domain.ItemScrap, Qty: 16},
		{Name: domain.ItemMedpack, Qty: 1},
		{Name: domain.ItemMedpack, Qty: 1},
	}, player.Inventory)
}

func TestClaim_IgnoresCapacity(t *testing.T) {
	svc := newTestService(Options{})
	player := domain.NewPlayer()
	player.Inventory = fillInventory(domain.DefaultMaxInventorySlots)

	svc.Claim(context.Background(), player, domain.LootManifest{{Name: domain.ItemNanoRepairKit, Qty: 1}})

	assert.Len(t, player.Inventory, domain.DefaultMaxInventorySlots+1)
}

func TestClaim_EmptyManifest(t *testing.T) {
	svc := newTestService(Options{})
	player := domain.NewPlayer()

	result := svc.Claim(context.Background(), player, nil)

	assert.NotNil(t, result.Claimed)
	assert.Empty(t, result.Claimed)
	assert.Zero(t, player.Credits)
	assert.Empty(t, player.Inventory)
}
