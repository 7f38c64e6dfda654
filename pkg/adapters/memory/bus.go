package memory

import (
	"context"
	"sync"

	"github.com/aretw0/stepline/pkg/domain"
)

// Bus implements ports.EventBus in memory.
// Safe for concurrent use.
type Bus struct {
	mu       sync.RWMutex
	events   []domain.Event
	handlers []func(domain.Event)
}

// NewBus creates a new in-memory bus.
func NewBus() *Bus {
	return &Bus{}
}

// Publish records the event and calls every subscriber synchronously.
func (b *Bus) Publish(ctx context.Context, event domain.Event) error {
	b.mu.Lock()
	b.events = append(b.events, event)
	handlers := append([]func(domain.Event){}, b.handlers...)
	b.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
	return nil
}

// Subscribe registers a handler for every future event.
func (b *Bus) Subscribe(h func(domain.Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Events returns a copy of every published event.
func (b *Bus) Events() []domain.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]domain.Event{}, b.events...)
}

// Of returns the unit ids of the events of one type, in publish order.
func (b *Bus) Of(t domain.EventType) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var ids []string
	for _, e := range b.events {
		if e.Type == t {
			ids = append(ids, e.UnitID)
		}
	}
	return ids
}
