package rabbitmq

import (
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type declaredQueue struct {
	name    string
	durable bool
	args    amqp.Table
}

type fakeDeclarer struct {
	exchangeName string
	exchangeKind string
	exchangeDur  bool
	queues       []declaredQueue
	bindQueue    string
	bindKey      string
	bindExchange string

	exchangeErr error
	queueErr    error
}

func (f *fakeDeclarer) ExchangeDeclare(
	name, kind string, durable, _, _, _ bool, _ amqp.Table,
) error {
	f.exchangeName = name
	f.exchangeKind = kind
	f.exchangeDur = durable
	return f.exchangeErr
}

func (f *fakeDeclarer) QueueDeclare(
	name string, durable, _, _, _ bool, args amqp.Table,
) (amqp.Queue, error) {
	f.queues = append(f.queues, declaredQueue{name: name, durable: durable, args: args})
	return amqp.Queue{Name: name}, f.queueErr
}

func (f *fakeDeclarer) QueueBind(name, key, exchange string, _ bool, _ amqp.Table) error {
	f.bindQueue = name
	f.bindKey = key
	f.bindExchange = exchange
	return nil
}

func TestDeclareTopology(t *testing.T) {
	declarer := &fakeDeclarer{}
	require.NoError(t, DeclareTopology(declarer))

	assert.Equal(t, OrdersExchange, declarer.exchangeName)
	assert.Equal(t, "topic", declarer.exchangeKind)
	assert.True(t, declarer.exchangeDur)

	require.Len(t, declarer.queues, 2)

	workQueue := declarer.queues[0]
	assert.Equal(t, OrdersQueue, workQueue.name)
	assert.True(t, workQueue.durable)
	assert.Equal(t, "", workQueue.args["x-dead-letter-exchange"])
	assert.Equal(t, OrdersDLQ, workQueue.args["x-dead-letter-routing-key"])

	dlq := declarer.queues[1]
	assert.Equal(t, OrdersDLQ, dlq.name)
	assert.True(t, dlq.durable)
	assert.Nil(t, dlq.args)

	assert.Equal(t, OrdersQueue, declarer.bindQueue)
	assert.Equal(t, RoutingKeyCreated, declarer.bindKey)
	assert.Equal(t, OrdersExchange, declarer.bindExchange)
}

func TestDeclareTopology_PropagatesErrors(t *testing.T) {
	declareErr := errors.New("channel closed")

	require.ErrorIs(t, DeclareTopology(&fakeDeclarer{exchangeErr: declareErr}), declareErr)
	require.ErrorIs(t, DeclareTopology(&fakeDeclarer{queueErr: declareErr}), declareErr)
}
