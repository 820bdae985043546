package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCancelOrderCommand(id)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCancelOrderCommand(invalidID)

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		cmd := commands.CancelOrderCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
	})
}
