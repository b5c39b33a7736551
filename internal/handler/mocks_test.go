package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MuForge_Go/internal/economy"
	"github.com/osse101/MuForge_Go/internal/game"
)

// MockGameService mocks game.Service
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) CreateSession(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGameService) GetState(ctx context.Context, sessionID string) (*game.State, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.State), args.Error(1)
}

func (m *MockGameService) DepositScrap(ctx context.Context, sessionID, scrapType string) (*game.DepositResult, error) {
	args := m.Called(ctx, sessionID, scrapType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.DepositResult), args.Error(1)
}

func (m *MockGameService) Heal(ctx context.Context, sessionID string) (*game.HealResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.HealResult), args.Error(1)
}

func (m *MockGameService) Purchase(ctx context.Context, sessionID, itemName string) (*game.PurchaseResult, error) {
	args := m.Called(ctx, sessionID, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.PurchaseResult), args.Error(1)
}

func (m *MockGameService) UnlockLocation(ctx context.Context, sessionID, locationID string) (*game.UnlockResult, error) {
	args := m.Called(ctx, sessionID, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.UnlockResult), args.Error(1)
}

func (m *MockGameService) GetPrices(ctx context.Context) []economy.PriceEntry {
	args := m.Called(ctx)
	return args.Get(0).([]economy.PriceEntry)
}

func (m *MockGameService) Search(ctx context.Context, sessionID string) (*game.SearchResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.SearchResult), args.Error(1)
}

func (m *MockGameService) StartEncounter(ctx context.Context, sessionID string) (*game.EncounterResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.EncounterResult), args.Error(1)
}

func (m *MockGameService) Attack(ctx context.Context, sessionID string, enemyID, attackPower int) (*game.AttackResult, error) {
	args := m.Called(ctx, sessionID, enemyID, attackPower)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.AttackResult), args.Error(1)
}

func (m *MockGameService) ClaimLoot(ctx context.Context, sessionID string) (*game.ClaimResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.ClaimResult), args.Error(1)
}

func (m *MockGameService) ExecuteCommand(ctx context.Context, sessionID, command string, cmdArgs []string) (*game.CommandResult, error) {
	args := m.Called(ctx, sessionID, command, cmdArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.CommandResult), args.Error(1)
}

// MockHealthChecker mocks HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) CheckHealth(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
