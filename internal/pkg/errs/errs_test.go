package errs_test

import (
	"errors"
	"testing"

	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("must be at least 1")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: must be at least 1)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("text", errors.New("hello\nworld"))
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerId")

		assert.Equal(t, "customerId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("customerId", cause)

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidStateTransitionError(t *testing.T) {
	t.Run("NewInvalidStateTransitionError", func(t *testing.T) {
		err := errs.NewInvalidStateTransitionError("order-1", "PROCESSING", "CANCELLED")

		assert.Equal(t, "order-1", err.ID)
		assert.Equal(t, "PROCESSING", err.From)
		assert.Equal(t, "CANCELLED", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"invalid state transition: order-1 cannot move from PROCESSING to CANCELLED",
			err.Error())
		assert.Equal(t, errs.ErrInvalidStateTransition, err.Unwrap())
	})

	t.Run("NewInvalidStateTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("terminal state")
		err := errs.NewInvalidStateTransitionErrorWithCause("order-1", "COMPLETED", "CANCELLED", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid state transition: order-1 cannot move from COMPLETED to CANCELLED (cause: terminal state)",
			err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidStateTransition)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid state transition", errs.ErrInvalidStateTransition.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("customerId"), errs.ErrValueIsRequired)
		require.ErrorIs(t,
			errs.NewInvalidStateTransitionError("order-1", "COMPLETED", "PROCESSING"),
			errs.ErrInvalidStateTransition)
	})
}
