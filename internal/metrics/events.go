package metrics

import (
	"context"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/event"
	"github.com/osse101/MuForge_Go/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every game event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.GameTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	payload, err := event.DecodePayload[domain.SessionEventPayload](evt.Payload)
	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadUnreadable, "type", evt.Type, "error", err)
		return nil
	}
	amount := float64(payload.Amount)

	switch evt.Type {
	case event.SessionCreated:
		SessionsCreated.Inc()

	case event.ScrapDeposited:
		ScrapDeposits.WithLabelValues(payload.Item).Inc()
		CreditsEarned.WithLabelValues(payload.Source).Add(amount)

	case event.PlayerHealed:
		HealsPerformed.Inc()

	case event.ItemPurchased:
		ItemsBought.WithLabelValues(payload.Item).Inc()
		CreditsSpent.WithLabelValues(payload.Source).Add(amount)

	case event.SearchPerformed:
		SearchesPerformed.Inc()
		CreditsEarned.WithLabelValues(payload.Source).Add(amount)

	case event.EncounterStarted:
		EncountersStarted.Inc()

	case event.EnemyDefeated:
		EnemiesDefeated.Inc()
		CreditsEarned.WithLabelValues(payload.Source).Add(amount)

	case event.EncounterWon:
		EncounterOutcomes.WithLabelValues(OutcomeWon).Inc()

	case event.PlayerDefeated:
		EncounterOutcomes.WithLabelValues(OutcomeDefeated).Inc()

	case event.LootClaimed:
		CreditsEarned.WithLabelValues(payload.Source).Add(amount)

	case event.LocationUnlocked:
		LocationsUnlocked.WithLabelValues(payload.Item).Inc()
		CreditsSpent.WithLabelValues(payload.Source).Add(amount)
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
