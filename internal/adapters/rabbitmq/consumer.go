package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultProcessingDelay simulates the work a real fulfilment step would
// do between PROCESSING and COMPLETED.
const DefaultProcessingDelay = 500 * time.Millisecond

// acknowledger is the subset of amqp.Delivery used to settle a message.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// channelConsumer is the subset of *amqp.Channel used for consuming.
type channelConsumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// Consumer drives the asynchronous processing pipeline: for every created
// order it receives, it moves the order PENDING → PROCESSING, performs the
// simulated work, moves it to COMPLETED and acks. Any failure moves the
// order to FAILED (best effort) and nacks without requeue, so the broker
// dead-letters the message.
//
// Acknowledgment is always manual. Each delivery is handled on its own
// goroutine; nothing serializes transitions for the same order ID, so a
// concurrent cancel can interleave with processing and the last write wins.
type Consumer struct {
	channel           channelConsumer
	transitionHandler commands.TransitionOrderCommandHandler
	processingDelay   time.Duration
	logger            *slog.Logger
}

// NewConsumer creates a consumer on top of an open channel. The channel
// must have the topology declared already.
func NewConsumer(
	channel channelConsumer,
	transitionHandler commands.TransitionOrderCommandHandler,
	logger *slog.Logger,
) *Consumer {
	return &Consumer{
		channel:           channel,
		transitionHandler: transitionHandler,
		processingDelay:   DefaultProcessingDelay,
		logger:            logger.With("component", "rabbitmq_consumer"),
	}
}

// Start begins consuming from the orders queue. It returns once the
// subscription is established; deliveries are handled on background
// goroutines until the context is cancelled or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(
		OrdersQueue,
		"",    // consumer tag, broker-generated
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume from %s: %w", OrdersQueue, err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					c.logger.WarnContext(ctx, "Delivery channel closed, consumer stopping")
					return
				}
				go c.handleDelivery(ctx, delivery.Body, delivery)
			}
		}
	}()

	c.logger.InfoContext(ctx, "Consumer started", "queue", OrdersQueue)
	return nil
}

func (c *Consumer) handleDelivery(ctx context.Context, body []byte, ack acknowledger) {
	if err := c.process(ctx, body); err != nil {
		c.logger.ErrorContext(ctx, "Order processing failed, dead-lettering message",
			"error", err.Error())
		if nackErr := ack.Nack(false, false); nackErr != nil {
			c.logger.ErrorContext(ctx, "Nack failed", "error", nackErr.Error())
		}
		return
	}

	if ackErr := ack.Ack(false); ackErr != nil {
		c.logger.ErrorContext(ctx, "Ack failed", "error", ackErr.Error())
	}
}

// process runs the pipeline for one message body. A nil return means the
// delivery must be acked; an error means it must be nacked without requeue.
func (c *Consumer) process(ctx context.Context, body []byte) error {
	var message OrderMessage
	if err := json.Unmarshal(body, &message); err != nil {
		return fmt.Errorf("unmarshal order message: %w", err)
	}

	orderID, err := message.orderID()
	if err != nil {
		return fmt.Errorf("invalid order ID in message: %w", err)
	}

	c.logger.InfoContext(ctx, "Processing order", "orderId", orderID.String())

	if err := c.transition(ctx, orderID, order.Processing); err != nil {
		c.markFailed(ctx, orderID)
		return err
	}

	// Simulated fulfilment work. Holds no locks, so a cancel arriving here
	// races the completion below.
	select {
	case <-ctx.Done():
		c.markFailed(ctx, orderID)
		return ctx.Err()
	case <-time.After(c.processingDelay):
	}

	if err := c.transition(ctx, orderID, order.Completed); err != nil {
		c.markFailed(ctx, orderID)
		return err
	}

	c.logger.InfoContext(ctx, "Order completed", "orderId", orderID.String())
	return nil
}

func (c *Consumer) transition(ctx context.Context, orderID kernel.UUID, target order.Status) error {
	cmd, err := commands.NewTransitionOrderCommand(orderID, target)
	if err != nil {
		return err
	}

	_, err = c.transitionHandler.Handle(ctx, cmd)
	return err
}

// markFailed is best effort: the nack that follows dead-letters the message
// regardless of whether the FAILED status could be persisted.
func (c *Consumer) markFailed(ctx context.Context, orderID kernel.UUID) {
	if err := c.transition(ctx, orderID, order.Failed); err != nil {
		c.logger.ErrorContext(ctx, "Could not mark order as failed",
			"orderId", orderID.String(),
			"error", err.Error())
	}
}
