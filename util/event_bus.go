// util/event_bus.go

package util

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
)

const EventDonorAvailability = "donor.availability"

// Event represents an event in the system
type Event struct {
	Type    string
	Payload interface{}
}

// EventHandler is a function that handles an event
type EventHandler func(context.Context, Event) error

// Subscription identifies a registered handler so it can be removed later.
type Subscription struct {
	eventType string
	id        uint64
}

// EventBus fans events out to subscribers without acknowledgement. A handler
// error never reaches the publisher.
type EventBus struct {
	subscribers map[string]map[uint64]EventHandler
	nextID      uint64
	mu          sync.RWMutex
	errorChan   chan error
}

// NewEventBus creates a new EventBus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string]map[uint64]EventHandler),
		errorChan:   make(chan error, 100),
	}
}

// Subscribe adds a new subscriber for a specific event type
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) Subscription {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.nextID++
	if eb.subscribers[eventType] == nil {
		eb.subscribers[eventType] = make(map[uint64]EventHandler)
	}
	eb.subscribers[eventType][eb.nextID] = handler
	return Subscription{eventType: eventType, id: eb.nextID}
}

// Unsubscribe removes a subscriber. Unknown subscriptions are ignored.
func (eb *EventBus) Unsubscribe(sub Subscription) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if handlers, ok := eb.subscribers[sub.eventType]; ok {
		delete(handlers, sub.id)
		if len(handlers) == 0 {
			delete(eb.subscribers, sub.eventType)
		}
	}
}

// SubscriberCount reports how many handlers listen for eventType.
func (eb *EventBus) SubscriberCount(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers[eventType])
}

// Publish delivers an event to every subscriber in the caller's goroutine, so
// each subscriber sees events in publish order. Handlers must not block.
func (eb *EventBus) Publish(ctx context.Context, eventType string, payload interface{}) {
	eb.mu.RLock()
	handlers := make([]EventHandler, 0, len(eb.subscribers[eventType]))
	for _, h := range eb.subscribers[eventType] {
		handlers = append(handlers, h)
	}
	eb.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	event := Event{
		Type:    eventType,
		Payload: payload,
	}

	// Handlers outlive the request that published the event.
	ctx = context.WithoutCancel(ctx)
	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			select {
			case eb.errorChan <- fmt.Errorf("event handler error: %w", err):
			default:
				logger.Error("Error channel full, logging event handler error",
					zap.Error(err),
					zap.String("eventType", eventType))
			}
		}
	}
}

// Start begins processing events and handling errors
func (eb *EventBus) Start(ctx context.Context) {
	go eb.processErrors(ctx)
}

func (eb *EventBus) processErrors(ctx context.Context) {
	for {
		select {
		case err := <-eb.errorChan:
			logger.Warn("Event handler error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}
