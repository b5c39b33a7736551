package economy

import (
	"context"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/gamedata"
	"github.com/osse101/MuForge_Go/internal/logger"
)

// DepositResult contains the result of a scrap deposit
type DepositResult struct {
	ScrapType     string `json:"scrap_type"`
	Deposited     int    `json:"deposited"`
	CreditsGained int    `json:"credits_gained"`
	Message       string `json:"message"`
}

// PurchaseResult contains the result of a shop purchase
type PurchaseResult struct {
	ItemName string `json:"item_name"`
	Cost     int    `json:"cost"`
	Message  string `json:"message"`
}

// UnlockResult contains the result of unlocking a location
type UnlockResult struct {
	LocationID  string `json:"location_id"`
	DisplayName string `json:"display_name"`
	Cost        int    `json:"cost"`
	Message     string `json:"message"`
}

// HealResult contains the result of a heal
type HealResult struct {
	Amount   int    `json:"amount"`
	Restored int    `json:"restored"`
	Message  string `json:"message"`
}

// PriceEntry is one line of the shop price list
type PriceEntry struct {
	ItemName string `json:"item_name"`
	Cost     int    `json:"cost"`
}

// Service defines the interface for credit-affecting operations on a player.
// Every method mutates the player in place and assumes the caller holds the
// owning session's lock. Failed operations leave the player untouched.
type Service interface {
	Deposit(ctx context.Context, player *domain.Player, scrapType string) (*DepositResult, error)
	Purchase(ctx context.Context, player *domain.Player, itemName string) (*PurchaseResult, error)
	UnlockLocation(ctx context.Context, player *domain.Player, locationID string) (*UnlockResult, error)
	Heal(ctx context.Context, player *domain.Player) *HealResult
	Grant(ctx context.Context, player *domain.Player, amount int, source string) int
	GetPrices(ctx context.Context) []PriceEntry
}

type service struct {
	tables *gamedata.Tables
}

// NewService creates a new economy service over the given tables
func NewService(tables *gamedata.Tables) Service {
	return &service{tables: tables}
}

// Grant adds a non-negative amount of credits and returns the amount applied
func (s *service) Grant(ctx context.Context, player *domain.Player, amount int, source string) int {
	if amount <= 0 {
		return 0
	}
	player.Credits += amount
	logger.FromContext(ctx).Debug(LogMsgCreditsGranted, "amount", amount, "source", source, "balance", player.Credits)
	return amount
}

// GetPrices returns the purchase table sorted by item name
func (s *service) GetPrices(ctx context.Context) []PriceEntry {
	logger.FromContext(ctx).Debug(LogMsgGetPricesCalled)

	names := s.tables.PurchasableItems()
	prices := make([]PriceEntry, 0, len(names))
	for _, name := range names {
		prices = append(prices, PriceEntry{ItemName: name, Cost: s.tables.Prices[name]})
	}
	return prices
}
