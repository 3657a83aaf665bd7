package metrics

import (
	"context"

	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/event"
	"github.com/openheads/headstore/internal/logger"
)

// EventMetricsCollector subscribes to store events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all event types the collector tracks
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.HeadAcquired,
		event.HeadRemoved,
		event.CatalogReloaded,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.HeadAcquired:
		payload, err := event.DecodePayload[domain.HeadAcquiredPayload](evt.Payload)
		if err != nil {
			log.Debug("Failed to decode event payload", "type", evt.Type, "error", err)
			return nil
		}
		// Acquisition outcomes are counted at the service; here only
		// the money that actually moved
		if payload.Charged > 0 {
			CurrencySpent.Add(float64(payload.Charged))
		}

	case event.HeadRemoved:
		Removals.Inc()

	case event.CatalogReloaded:
		payload, err := event.DecodePayload[domain.CatalogReloadedPayload](evt.Payload)
		if err != nil {
			log.Debug("Failed to decode event payload", "type", evt.Type, "error", err)
			return nil
		}
		CatalogReloads.WithLabelValues(OutcomeSuccess).Inc()
		CatalogEntries.Set(float64(payload.Entries))
	}

	return nil
}
