// Package events forwards domain events from the in-process bus to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/leadflow/leadflow/config"
	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/pkg/logger"
)

// PublishTimeout bounds a single broker publish
var PublishTimeout = 5 * time.Second

// Channel is the subset of *amqp.Channel the forwarder uses
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPForwarder publishes every lead event to a durable topic exchange.
// Routing keys have the form "<namespace>.<event type>", for example
// "leadflow.lead.added_to_group".
type AMQPForwarder struct {
	conn      *amqp.Connection
	ch        Channel
	exchange  string
	namespace string
	logger    logger.Logger

	mu       sync.Mutex
	bus      domain.EventBus
	subs     map[domain.EventType]domain.SubscriptionID
	closed   bool
	inflight sync.WaitGroup
}

// DialAMQPForwarder connects to the broker described by cfg
func DialAMQPForwarder(cfg config.EventsConfig, log logger.Logger) (*AMQPForwarder, error) {
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	f, err := NewAMQPForwarder(ch, cfg.Exchange, cfg.RoutingKeyNS, log)
	if err != nil {
		conn.Close()
		return nil, err
	}
	f.conn = conn
	return f, nil
}

// NewAMQPForwarder declares the exchange on ch and returns a forwarder using it
func NewAMQPForwarder(ch Channel, exchange, namespace string, log logger.Logger) (*AMQPForwarder, error) {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &AMQPForwarder{
		ch:        ch,
		exchange:  exchange,
		namespace: namespace,
		logger:    log,
	}, nil
}

// RoutingKey returns the routing key used for eventType
func (f *AMQPForwarder) RoutingKey(eventType domain.EventType) string {
	if f.namespace == "" {
		return string(eventType)
	}
	return f.namespace + "." + string(eventType)
}

// Attach subscribes the forwarder to every lead event on bus
func (f *AMQPForwarder) Attach(bus domain.EventBus) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.bus = bus
	f.subs = make(map[domain.EventType]domain.SubscriptionID, len(domain.AllEventTypes))
	for _, eventType := range domain.AllEventTypes {
		f.subs[eventType] = bus.Subscribe(eventType, f.handle)
	}
}

func (f *AMQPForwarder) handle(ctx context.Context, event domain.EventPayload) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.inflight.Add(1)
	f.mu.Unlock()
	defer f.inflight.Done()

	if err := f.Forward(ctx, event); err != nil {
		f.logger.WithFields(map[string]interface{}{
			"event_type": string(event.Type),
			"lead_id":    event.LeadID,
		}).Error(fmt.Sprintf("Failed to forward event: %v", err))
	}
}

// Forward publishes a single event to the exchange
func (f *AMQPForwarder) Forward(ctx context.Context, event domain.EventPayload) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, PublishTimeout)
	defer cancel()

	err = f.ch.PublishWithContext(ctx,
		f.exchange,
		f.RoutingKey(event.Type),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Type:         string(event.Type),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}
	return nil
}

// Close detaches from the bus, waits for in-flight publishes and closes the channel
func (f *AMQPForwarder) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	if f.bus != nil {
		for eventType, id := range f.subs {
			f.bus.Unsubscribe(eventType, id)
		}
	}
	f.mu.Unlock()

	f.inflight.Wait()

	err := f.ch.Close()
	if f.conn != nil {
		if cerr := f.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
