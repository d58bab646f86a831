// Package events implements the per-Game synchronous typed event bus that
// narrator and art-provider collaborators subscribe to. There is no global
// registry: every Game owns its own bus instance.
package events

import (
	"fmt"
	"sync"

	"realmforge-backend/internal/logger"

	"go.uber.org/zap"
)

// SubscriptionID identifies a registered handler for later Unsubscribe.
type SubscriptionID string

// Handler is a type-safe event handler function.
type Handler[T any] func(event T)

// subscription wraps a handler with its type information. Handlers are kept
// in a slice, not a map, so Publish dispatches in registration order as
// required by the core's ordering guarantees.
type subscription struct {
	id        SubscriptionID
	eventType string
	dispatch  func(event any)
}

// Bus dispatches events synchronously, in subscriber registration order, to
// handlers matching the published event's concrete type.
type Bus struct {
	mu            sync.RWMutex
	subscriptions []*subscription
	nextID        uint64
	gameID        string
	log           *zap.Logger
}

// New creates an event bus owned by a single Game instance.
func New(gameID string) *Bus {
	return &Bus{
		gameID: gameID,
		log:    logger.WithGameContext(gameID, ""),
	}
}

// Subscribe registers a type-safe event handler and returns an ID that can
// later be passed to Unsubscribe.
func Subscribe[T any](b *Bus, handler Handler[T]) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := SubscriptionID(fmt.Sprintf("sub-%d", b.nextID))

	var zero T
	eventType := fmt.Sprintf("%T", zero)

	sub := &subscription{
		id:        id,
		eventType: eventType,
		dispatch: func(event any) {
			if typed, ok := event.(T); ok {
				handler(typed)
			}
		},
	}
	b.subscriptions = append(b.subscriptions, sub)

	b.log.Debug("event handler subscribed",
		zap.String("subscription_id", string(id)),
		zap.String("event_type", eventType))

	return id
}

// Publish dispatches event to every subscriber registered for its concrete
// type, synchronously, in registration order.
func Publish[T any](b *Bus, event T) {
	b.mu.RLock()
	eventType := fmt.Sprintf("%T", event)
	var matching []func(any)
	for _, sub := range b.subscriptions {
		if sub.eventType == eventType {
			matching = append(matching, sub.dispatch)
		}
	}
	b.mu.RUnlock()

	if len(matching) == 0 {
		b.log.Debug("no subscribers for event", zap.String("event_type", eventType))
		return
	}

	for _, dispatch := range matching {
		dispatch(event)
	}
}

// Unsubscribe removes a previously registered handler.
func (b *Bus) Unsubscribe(id SubscriptionID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscriptions {
		if sub.id == id {
			b.subscriptions = append(b.subscriptions[:i], b.subscriptions[i+1:]...)
			return
		}
	}
}

// Clear removes every subscription. Useful for tests that reuse a Game.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscriptions = nil
}
