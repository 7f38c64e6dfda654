package ports

import (
	"context"
	"errors"

	"github.com/aretw0/stepline/pkg/domain"
)

// EventBus receives engine notifications.
// Publish must not block the render loop for long; errors are logged by the
// engine and never abort a tick.
type EventBus interface {
	Publish(ctx context.Context, event domain.Event) error
}

// EventBusFunc adapts a function to the EventBus interface.
type EventBusFunc func(ctx context.Context, event domain.Event) error

// Publish calls f.
func (f EventBusFunc) Publish(ctx context.Context, event domain.Event) error {
	return f(ctx, event)
}

// Fanout returns an EventBus that publishes to every bus in order.
// Every bus is attempted; the errors are joined.
func Fanout(buses ...EventBus) EventBus {
	return EventBusFunc(func(ctx context.Context, event domain.Event) error {
		var errs []error
		for _, b := range buses {
			if b == nil {
				continue
			}
			if err := b.Publish(ctx, event); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
