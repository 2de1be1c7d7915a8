// Package rabbitmq publishes order status events to a topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"driverapi/internal/core/ports"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RoutingKeyPrefix is followed by the driver status, e.g. "order.status.delivered".
const RoutingKeyPrefix = "order.status."

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher implements ports.EventPublisher.
type Publisher struct {
	channel  Channel
	exchange string
	timeout  time.Duration
}

// NewPublisher declares a durable topic exchange and returns a publisher for it.
func NewPublisher(channel Channel, exchange string, timeout time.Duration) (*Publisher, error) {
	if err := channel.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %q: %w", exchange, err)
	}

	return &Publisher{
		channel:  channel,
		exchange: exchange,
		timeout:  timeout,
	}, nil
}

func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order status event: %w", err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, RoutingKeyPrefix+event.DriverStatus, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    event.OccurredAt,
		Type:         "OrderStatusChanged",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish order status event: %w", err)
	}

	return nil
}

// Noop drops every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) PublishOrderStatusChanged(context.Context, ports.OrderStatusChanged) error {
	return nil
}
