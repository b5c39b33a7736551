// Package gamedata holds the fixed game tables: prices, unlock costs, loot
// tables and inventory limits. Values are configuration, not derived.
package gamedata

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/MuForge_Go/internal/domain"
)

// Range is an inclusive integer range used for random rolls
type Range struct {
	Min int `yaml:"min" validate:"gte=0"`
	Max int `yaml:"max" validate:"gtefield=Min"`
}

// Tables is the complete set of tuning tables the engine reads
type Tables struct {
	StackSize         int `yaml:"stack_size" validate:"gt=0"`
	MaxInventorySlots int `yaml:"max_inventory_slots" validate:"gt=0"`

	Prices       map[string]int `yaml:"prices" validate:"required,dive,keys,required,endkeys,gte=0"`
	UnlockCosts  map[string]int `yaml:"unlock_costs" validate:"required,dive,keys,required,endkeys,gte=0"`
	DepositRates map[string]int `yaml:"deposit_rates" validate:"required,dive,keys,required,endkeys,gt=0"`

	HealAmount          int    `yaml:"heal_amount" validate:"gt=0"`
	SpecialWeapon       string `yaml:"special_weapon" validate:"required"`
	SpecialWeaponCharge int    `yaml:"special_weapon_charges" validate:"gt=0"`

	Search    SearchTable    `yaml:"search"`
	Encounter EncounterTable `yaml:"encounter"`
}

// SearchTable drives the search action
type SearchTable struct {
	Loot        []domain.LootEntry `yaml:"loot" validate:"required,min=1,dive"`
	Rolls       Range              `yaml:"rolls"`
	CreditBonus Range              `yaml:"credit_bonus"`
}

// EncounterTable drives enemy generation and the pre-rolled victory payout
type EncounterTable struct {
	Enemies Range `yaml:"enemies"`

	BaseHealth     int `yaml:"base_health" validate:"gt=0"`
	HealthPerLevel int `yaml:"health_per_level" validate:"gte=0"`
	BaseAttack     int `yaml:"base_attack" validate:"gte=0"`
	AttackPerLevel int `yaml:"attack_per_level" validate:"gte=0"`
	BaseReward     int `yaml:"base_reward" validate:"gte=0"`
	RewardPerLevel int `yaml:"reward_per_level" validate:"gte=0"`

	// CounterRatio scales the player's own attack input into enemy damage
	CounterRatio     float64 `yaml:"counter_ratio" validate:"gte=0"`
	MinCounterDamage int     `yaml:"min_counter_damage" validate:"gte=0"`

	LootCredits   Range `yaml:"loot_credits"`
	LootScrap     Range `yaml:"loot_scrap"`
	LootIronScrap Range `yaml:"loot_iron_scrap"`
}

// Default returns the built-in tables
func Default() *Tables {
	return &Tables{
		StackSize:         domain.DefaultStackSize,
		MaxInventorySlots: domain.DefaultMaxInventorySlots,
		Prices: map[string]int{
			domain.ItemMedpack:       25,
			domain.ItemNanoRepairKit: 50,
			domain.ItemEnergyCell:    10,
			domain.ItemChargeCell:    5,
			domain.ItemArmor:         80,
			domain.ItemEnergyShield:  100,
			domain.ItemWeapon:        60,
			domain.ItemBlaster:       90,
			domain.ItemPlasmaBlaster: 90,
		},
		UnlockCosts: map[string]int{
			domain.LocationDeltaBase:     50,
			domain.LocationDeltaBaseNode: 50,
		},
		DepositRates: map[string]int{
			domain.ItemScrap:     2,
			domain.ItemIronScrap: 5,
		},
		HealAmount:          15,
		SpecialWeapon:       domain.ItemPlasmaBlaster,
		SpecialWeaponCharge: 2,
		Search: SearchTable{
			Loot: []domain.LootEntry{
				{Name: domain.ItemScrap, Qty: 1},
				{Name: domain.ItemIronScrap, Qty: 1},
				{Name: domain.ItemEnergyCell, Qty: 1},
				{Name: domain.ItemNanoRepairKit, Qty: 1},
				{Name: domain.ItemMedpack, Qty: 1},
			},
			Rolls:       Range{Min: 1, Max: 2},
			CreditBonus: Range{Min: 5, Max: 25},
		},
		Encounter: EncounterTable{
			Enemies:          Range{Min: 1, Max: 2},
			BaseHealth:       40,
			HealthPerLevel:   10,
			BaseAttack:       8,
			AttackPerLevel:   2,
			BaseReward:       10,
			RewardPerLevel:   5,
			CounterRatio:     0.40,
			MinCounterDamage: 4,
			LootCredits:      Range{Min: 20, Max: 60},
			LootScrap:        Range{Min: 1, Max: 4},
			LootIronScrap:    Range{Min: 0, Max: 2},
		},
	}
}

// Load reads tables from a YAML file on top of the built-in defaults.
// Keys missing from the file keep their default; map entries in the file are
// merged over the default map and lists replace the default list.
func Load(path string) (*Tables, error) {
	tables := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadTablesFailed, path, err)
	}
	if err := yaml.Unmarshal(raw, tables); err != nil {
		return nil, fmt.Errorf(ErrMsgParseTablesFailed, path, err)
	}
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return tables, nil
}

// Validate checks table values with struct tags
func (t *Tables) Validate() error {
	if err := validator.New().Struct(t); err != nil {
		return fmt.Errorf(ErrMsgInvalidTables, err)
	}
	for _, entry := range t.Search.Loot {
		if entry.Name == "" || entry.Qty <= 0 {
			return fmt.Errorf(ErrMsgInvalidSearchEntry, entry.Name, entry.Qty)
		}
	}
	return nil
}

// PriceOf returns the purchase price of an item and whether it is sold at all
func (t *Tables) PriceOf(name string) (int, bool) {
	cost, ok := t.Prices[name]
	return cost, ok
}

// UnlockCostOf returns the cost of unlocking a location and whether it is unlockable
func (t *Tables) UnlockCostOf(locationID string) (int, bool) {
	cost, ok := t.UnlockCosts[locationID]
	return cost, ok
}

// DepositRateOf returns the credits paid per unit of a deposited scrap kind
func (t *Tables) DepositRateOf(name string) (int, bool) {
	rate, ok := t.DepositRates[name]
	return rate, ok
}

// PurchasableItems returns the names of all buyable items in sorted order
func (t *Tables) PurchasableItems() []string {
	return slices.Sorted(maps.Keys(t.Prices))
}
