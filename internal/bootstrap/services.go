package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/MuForge_Go/internal/combat"
	"github.com/osse101/MuForge_Go/internal/config"
	"github.com/osse101/MuForge_Go/internal/economy"
	"github.com/osse101/MuForge_Go/internal/event"
	"github.com/osse101/MuForge_Go/internal/game"
	"github.com/osse101/MuForge_Go/internal/gamedata"
	"github.com/osse101/MuForge_Go/internal/loot"
	"github.com/osse101/MuForge_Go/internal/metrics"
	"github.com/osse101/MuForge_Go/internal/session"
)

// LoadTables returns the configured game tables, or the built-in ones
func LoadTables(cfg *config.Config) (*gamedata.Tables, error) {
	if cfg.GameTablesPath == "" {
		slog.Info(LogMsgUsingBuiltinTables)
		return gamedata.Default(), nil
	}

	tables, err := gamedata.Load(cfg.GameTablesPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadTables, err)
	}
	slog.Info(LogMsgTablesLoaded, "path", cfg.GameTablesPath)
	return tables, nil
}

// NewSessionStore builds the configured session store and exposes its size
// as a gauge.
func NewSessionStore(cfg *config.Config) session.Store {
	var store session.Store
	switch cfg.SessionStore {
	case config.SessionStoreLRU:
		store = session.NewLRUStore(session.LRUOptions{
			Size: cfg.SessionCacheSize,
			TTL:  cfg.SessionTTL,
			OnEvict: func(id string) {
				metrics.SessionsEvicted.Inc()
				slog.Debug(LogMsgSessionEvicted, "session_id", id)
			},
		})
	default:
		store = session.NewMemoryStore()
	}

	metrics.RegisterActiveSessions(store.Len)
	slog.Info(LogMsgSessionStoreReady, "kind", cfg.SessionStore)
	return store
}

// NewGameService wires the economy, loot and combat components into the
// session-level game service.
func NewGameService(cfg *config.Config, tables *gamedata.Tables, store session.Store, publisher event.Publisher) game.Service {
	economySvc := economy.NewService(tables)
	lootSvc := loot.NewService(tables, economySvc, loot.Options{
		BonusWhenFull: cfg.SearchBonusWhenFull,
	})
	combatSvc := combat.NewService(tables, economySvc, lootSvc, combat.Options{
		DefeatPolicy: combat.DefeatPolicy(cfg.DefeatPolicy),
	})

	return game.NewService(store, economySvc, lootSvc, combatSvc, publisher, game.Options{
		Seed: cfg.RandomSeed,
	})
}
