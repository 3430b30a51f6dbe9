// Package hooks implements the typed side-effect pipeline fired after order
// creation and after every status change.
//
// Handlers subscribe per event type and run sequentially in registration order,
// inside the unit of work of the change that published the event:
//
//	bus := hooks.NewBus(logger)
//	hooks.Subscribe(bus, "loyalty_points", func(ctx context.Context, repos ports.Repositories, e events.PaymentStatusChanged) error {
//	    return awardPoints(ctx, repos, e.Order())
//	})
//
// A failing business handler aborts the remaining chain and its error reaches
// the caller, which rolls the whole change back. Notification handlers,
// registered with SubscribeNotification, are fire-and-forget: their errors and
// panics are logged and swallowed.
package hooks

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"shop/internal/core/domain/events"
	"shop/internal/core/ports"
)

// Handler reacts to one event type.
type Handler[E events.Event] func(ctx context.Context, repos ports.Repositories, event E) error

// HookError wraps the error of the business hook that aborted the chain.
type HookError struct {
	Hook  string
	Event string
	Err   error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("hook %s on %s failed: %v", e.Hook, e.Event, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

type subscription struct {
	name         string
	notification bool
	handle       func(ctx context.Context, repos ports.Repositories, event events.Event) error
}

// Bus dispatches events to subscribed handlers. It is safe for concurrent use;
// subscriptions are expected to happen at start-up.
type Bus struct {
	mu            sync.RWMutex
	subscriptions map[string][]subscription
	logger        *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		subscriptions: make(map[string][]subscription),
		logger:        logger.With("component", "hooks"),
	}
}

// Subscribe registers a business-critical handler for events of type E.
func Subscribe[E events.Event](b *Bus, name string, handler Handler[E]) {
	b.add(eventName[E](), subscription{name: name, handle: adapt(handler)})
}

// SubscribeNotification registers a handler whose failures never reach the caller.
func SubscribeNotification[E events.Event](b *Bus, name string, handler Handler[E]) {
	b.add(eventName[E](), subscription{name: name, notification: true, handle: adapt(handler)})
}

// eventName reads the name from the zero value; events are value types.
func eventName[E events.Event]() string {
	var zero E
	return zero.Name()
}

func adapt[E events.Event](handler Handler[E]) func(context.Context, ports.Repositories, events.Event) error {
	return func(ctx context.Context, repos ports.Repositories, event events.Event) error {
		typed, ok := event.(E)
		if !ok {
			return fmt.Errorf("unexpected event type %T for %s", event, eventName[E]())
		}
		return handler(ctx, repos, typed)
	}
}

func (b *Bus) add(name string, s subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscriptions[name] = append(b.subscriptions[name], s)
}

// Publish runs the handlers subscribed to event in registration order.
func (b *Bus) Publish(ctx context.Context, repos ports.Repositories, event events.Event) error {
	b.mu.RLock()
	subscriptions := slices.Clone(b.subscriptions[event.Name()])
	b.mu.RUnlock()

	for _, s := range subscriptions {
		if s.notification {
			b.notify(ctx, repos, event, s)
			continue
		}
		if err := s.handle(ctx, repos, event); err != nil {
			return &HookError{Hook: s.name, Event: event.Name(), Err: err}
		}
	}
	return nil
}

func (b *Bus) notify(ctx context.Context, repos ports.Repositories, event events.Event, s subscription) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.ErrorContext(ctx, "Notification hook panicked",
				"hook", s.name, "event", event.Name(), "panic", r)
		}
	}()

	if err := s.handle(ctx, repos, event); err != nil {
		b.logger.WarnContext(ctx, "Notification hook failed",
			"hook", s.name, "event", event.Name(), "order_id", event.Order().ID().String(), "error", err)
	}
}

// Len returns the number of handlers subscribed to the named event.
func (b *Bus) Len(eventName string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscriptions[eventName])
}
