// Package rabbitmq adapts the order lifecycle to a RabbitMQ broker: the
// publisher pushes order events out, the consumer drives the asynchronous
// processing pipeline, and both share the declared topology and wire format.
package rabbitmq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

// Broker identifiers. The queue dead-letters through the default exchange
// ("") straight into the DLQ, so the DLQ needs no binding of its own.
const (
	OrdersExchange = "orders.exchange"
	OrdersQueue    = "orders.queue"
	OrdersDLQ      = "orders.dlq"

	RoutingKeyCreated   = "order.created"
	RoutingKeyCancelled = "order.cancelled"
)

// topologyDeclarer is the subset of *amqp.Channel used to set up the broker.
type topologyDeclarer interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
}

// DeclareTopology declares the exchange, work queue, dead-letter queue and
// binding. All declarations are durable and idempotent: publisher and
// consumer both call this on startup, whichever connects first creates the
// topology and the other re-declares it as a no-op.
func DeclareTopology(ch topologyDeclarer) error {
	if err := ch.ExchangeDeclare(
		OrdersExchange,
		"topic",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(
		OrdersQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		amqp.Table{
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": OrdersDLQ,
		},
	); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(
		OrdersDLQ,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return err
	}

	return ch.QueueBind(OrdersQueue, RoutingKeyCreated, OrdersExchange, false, nil)
}
