package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openheads/headstore/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types emitted by the store
const (
	HeadAcquired    Type = Type(domain.EventTypeHeadAcquired)
	HeadRemoved     Type = Type(domain.EventTypeHeadRemoved)
	CatalogReloaded Type = Type(domain.EventTypeCatalogReloaded)
)

// Typed event constructors

// NewHeadAcquiredEvent records a successful grant, whatever the source
// mode. charged is the amount actually debited, zero for free, reward,
// and admin grants.
func NewHeadAcquiredEvent(playerID string, entry domain.CatalogEntry, mode domain.AcquireMode, charged int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HeadAcquired,
		Payload: domain.HeadAcquiredPayload{
			PlayerID:   playerID,
			EntryID:    entry.ID,
			Category:   entry.Category,
			Price:      entry.Price,
			Charged:    charged,
			SourceMode: string(mode),
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewHeadRemovedEvent records an administrative removal.
func NewHeadRemovedEvent(playerID, entryID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HeadRemoved,
		Payload: domain.HeadRemovedPayload{
			PlayerID:  playerID,
			EntryID:   entryID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCatalogReloadedEvent records an atomic catalog swap.
func NewCatalogReloadedEvent(entries, categories int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogReloaded,
		Payload: domain.CatalogReloadedPayload{
			Entries:    entries,
			Categories: categories,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
