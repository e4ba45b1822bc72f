package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

//go:generate mockgen -destination mocks/mock_event_bus.go -package mocks github.com/leadflow/leadflow/internal/domain EventBus

// EventType defines the type of an event
type EventType string

const (
	EventLeadCreated              EventType = "lead.created"
	EventLeadStatusChanged        EventType = "lead.status_changed"
	EventLeadDeleted              EventType = "lead.deleted"
	EventLeadAddedToGroup         EventType = "lead.added_to_group"
	EventLeadRemovedFromGroup     EventType = "lead.removed_from_group"
	EventLeadAddedToCampaign      EventType = "lead.added_to_campaign"
	EventLeadCampaignStatusUpdate EventType = "lead.campaign_status_updated"
	EventLeadRemovedFromCampaign  EventType = "lead.removed_from_campaign"
)

// AllEventTypes lists every event the services publish
var AllEventTypes = []EventType{
	EventLeadCreated,
	EventLeadStatusChanged,
	EventLeadDeleted,
	EventLeadAddedToGroup,
	EventLeadRemovedFromGroup,
	EventLeadAddedToCampaign,
	EventLeadCampaignStatusUpdate,
	EventLeadRemovedFromCampaign,
}

// EventPayload represents the data associated with an event
type EventPayload struct {
	Type       EventType              `json:"type"`
	LeadID     int64                  `json:"leadId"`
	GroupID    int64                  `json:"groupId,omitempty"`
	CampaignID int64                  `json:"campaignId,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
	OccurredAt time.Time              `json:"occurredAt"`
}

// EventHandler is a function that handles events
type EventHandler func(ctx context.Context, payload EventPayload)

// EventAckCallback is called once every subscriber has processed an event
type EventAckCallback func(err error)

// SubscriptionID identifies one Subscribe call and is used to cancel it
type SubscriptionID uint64

// EventBus provides a way for services to publish and subscribe to events
type EventBus interface {
	// PublishWithAck sends an event to all subscribers and calls the callback
	// when all of them have returned, failed or timed out
	PublishWithAck(ctx context.Context, event EventPayload, callback EventAckCallback)

	Subscribe(eventType EventType, handler EventHandler) SubscriptionID
	Unsubscribe(eventType EventType, id SubscriptionID)
}

// HandlerTimeout bounds how long PublishWithAck waits for a single handler
var HandlerTimeout = 5 * time.Second

type subscription struct {
	id      SubscriptionID
	handler EventHandler
}

// InMemoryEventBus dispatches events to in-process subscribers
type InMemoryEventBus struct {
	subscribers map[EventType][]subscription
	nextID      SubscriptionID
	mu          sync.RWMutex
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus() *InMemoryEventBus {
	return &InMemoryEventBus{
		subscribers: make(map[EventType][]subscription),
	}
}

func (b *InMemoryEventBus) handlersFor(eventType EventType) []EventHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	subs := b.subscribers[eventType]
	out := make([]EventHandler, len(subs))
	for i, sub := range subs {
		out[i] = sub.handler
	}
	return out
}

func (b *InMemoryEventBus) PublishWithAck(ctx context.Context, event EventPayload, callback EventAckCallback) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	handlers := b.handlersFor(event.Type)
	if len(handlers) == 0 {
		if callback != nil {
			callback(nil)
		}
		return
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(handlers))

	for _, handler := range handlers {
		wg.Add(1)
		go func(h EventHandler) {
			defer wg.Done()

			handlerCtx, cancel := context.WithTimeout(ctx, HandlerTimeout)
			defer cancel()

			done := make(chan error, 1)
			go func() {
				defer func() {
					if r := recover(); r != nil {
						done <- fmt.Errorf("panic in event handler: %v", r)
						return
					}
					done <- nil
				}()
				h(handlerCtx, event)
			}()

			select {
			case err := <-done:
				if err != nil {
					errCh <- err
				}
			case <-handlerCtx.Done():
				errCh <- fmt.Errorf("event handler timed out: %w", handlerCtx.Err())
			}
		}(handler)
	}

	go func() {
		wg.Wait()
		close(errCh)

		var errs []error
		for err := range errCh {
			errs = append(errs, err)
		}
		if callback != nil {
			callback(errors.Join(errs...))
		}
	}()
}

// Subscribe registers handler for eventType. Every call gets its own id,
// so the same function may be registered more than once.
func (b *InMemoryEventBus) Subscribe(eventType EventType, handler EventHandler) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.subscribers[eventType] = append(b.subscribers[eventType], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes the registration with the given id. Unknown ids are ignored.
func (b *InMemoryEventBus) Unsubscribe(eventType EventType, id SubscriptionID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subscribers[eventType]
	for i, sub := range subs {
		if sub.id == id {
			b.subscribers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}
