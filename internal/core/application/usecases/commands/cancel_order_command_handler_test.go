package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pending := sampleOrder(t)
	cmd, _ := commands.NewCancelOrderCommand(pending.ID())

	repo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		repo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		repo.On("Update", mock.Anything, pending).Return(nil).Once(),
		publisher.On("Publish", mock.Anything, mock.AnythingOfType("order.CancelledEvent")).Return(nil).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(repo, publisher, testLogger())
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	missing := sampleOrder(t)
	cmd, _ := commands.NewCancelOrderCommand(missing.ID())

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, missing.ID()).
		Return(nil, errs.NewObjectNotFoundError("order", missing.ID().String())).Once()

	h := commands.NewCancelOrderCommandHandler(repo, new(MockEventPublisher), testLogger())
	cancelled, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, cancelled)
}

func TestCancelOrderCommandHandler_Handle_ConflictWhenNotPending(t *testing.T) {
	ctx := t.Context()
	processing := sampleOrder(t)
	require.NoError(t, processing.ChangeStatus(order.Processing))
	cmd, _ := commands.NewCancelOrderCommand(processing.ID())

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, processing.ID()).Return(processing, nil).Once()
	publisher := new(MockEventPublisher)

	h := commands.NewCancelOrderCommandHandler(repo, publisher, testLogger())
	cancelled, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	assert.Nil(t, cancelled)
	assert.Equal(t, order.Processing, processing.Status(), "status must be unchanged")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	pending := sampleOrder(t)
	cmd, _ := commands.NewCancelOrderCommand(pending.ID())

	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		repo.On("Update", mock.Anything, pending).Return(errors.New("update error")).Once(),
	)
	publisher := new(MockEventPublisher)

	h := commands.NewCancelOrderCommandHandler(repo, publisher, testLogger())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
