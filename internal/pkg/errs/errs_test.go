package errs_test

import (
	"errors"
	"testing"

	"frangodahora/internal/pkg/errs"

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
		err := errs.NewValueIsInvalidError("neighborhood")

		assert.Equal(t, "neighborhood", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: neighborhood", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("neighborhood", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: neighborhood (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 0, 120)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("reason")

		assert.Equal(t, "reason", err.ParamName)
		assert.Equal(t, "value is required: reason", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("reason", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: reason (cause: missing required field)", err.Error())
	})
}

func TestInsufficientStockError(t *testing.T) {
	err := errs.NewInsufficientStockError(2, 1.5)

	assert.InDelta(t, 2.0, err.Requested, 0)
	assert.InDelta(t, 1.5, err.Remaining, 0)
	assert.Equal(t, "insufficient stock: requested 2.0, remaining 1.5", err.Error())
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
}

func TestRemoteErrors(t *testing.T) {
	t.Run("RemoteAuthError", func(t *testing.T) {
		cause := errors.New("401 unauthorized")
		err := errs.NewRemoteAuthError(cause)

		require.ErrorIs(t, err, errs.ErrRemoteAuth)
		assert.Contains(t, err.Error(), "401 unauthorized")
	})

	t.Run("RemoteAuthError without cause", func(t *testing.T) {
		err := errs.NewRemoteAuthError(nil)
		assert.Equal(t, "marketplace authentication failed", err.Error())
	})

	t.Run("RemoteCallError", func(t *testing.T) {
		cause := errors.New("context deadline exceeded")
		err := errs.NewRemoteCallError("cancel order", cause)

		require.ErrorIs(t, err, errs.ErrRemoteCall)
		assert.Equal(t, "marketplace call failed: cancel order (cause: context deadline exceeded)", err.Error())
	})
}
