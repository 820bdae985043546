package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channelPublisher is the subset of *amqp.Channel used for publishing.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

var _ ports.EventPublisher = &Publisher{}

// Publisher sends order events to the orders exchange.
//
// Publishing is fire-and-forget: the broker does not confirm delivery and
// there is no outbox, so a failed publish leaves the stored order without
// its event. Callers decide whether that is fatal.
type Publisher struct {
	channel channelPublisher
	logger  *slog.Logger
}

// NewPublisher creates a publisher on top of an open channel. The channel
// must have the topology declared already.
func NewPublisher(channel channelPublisher, logger *slog.Logger) *Publisher {
	return &Publisher{
		channel: channel,
		logger:  logger.With("component", "rabbitmq_publisher"),
	}
}

// Publish routes the event by its concrete variant and sends the order
// snapshot as a persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, event order.Event) error {
	routingKey, err := routingKeyFor(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(newOrderMessage(event.Order()))
	if err != nil {
		return fmt.Errorf("marshal order message: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		OrdersExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish to %s with key %s: %w", OrdersExchange, routingKey, err)
	}

	p.logger.InfoContext(ctx, "Published order event",
		"routingKey", routingKey,
		"orderId", event.Order().ID().String())
	return nil
}

// routingKeyFor maps an event variant to its routing key. The switch is
// exhaustive over the sealed variant set; an unknown variant is an error,
// never a silent misroute.
func routingKeyFor(event order.Event) (string, error) {
	switch event.(type) {
	case order.CreatedEvent:
		return RoutingKeyCreated, nil
	case order.CancelledEvent:
		return RoutingKeyCancelled, nil
	default:
		return "", fmt.Errorf("no routing key for event type %T", event)
	}
}
