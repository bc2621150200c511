package errs_test

import (
	"errors"
	"testing"

	"pizzahome/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "PH-A1B2C3D4")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "PH-A1B2C3D4", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: PH-A1B2C3D4", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "PH-A1B2C3D4", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: PH-A1B2C3D4 (cause: record not found)",
			err.Error())
	})
}

func TestDuplicateIDError(t *testing.T) {
	t.Run("NewDuplicateIDError", func(t *testing.T) {
		err := errs.NewDuplicateIDError("orderId", "PH-A1B2C3D4")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "duplicate identifier: PH-A1B2C3D4", err.Error())
		assert.Equal(t, errs.ErrDuplicateID, err.Unwrap())
	})

	t.Run("NewDuplicateIDErrorWithCause", func(t *testing.T) {
		cause := errors.New("UNIQUE constraint failed")
		err := errs.NewDuplicateIDErrorWithCause("orderId", "PH-A1B2C3D4", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "cause: UNIQUE constraint failed")
	})
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("cart is empty")

	assert.Equal(t, "invalid state: cart is empty", err.Error())
	assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
}

func TestValueErrors(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerPhone")
		assert.Equal(t, "value is required: customerPhone", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("invalid with cause", func(t *testing.T) {
		cause := errors.New("negative amount")
		err := errs.NewValueIsInvalidErrorWithCause("deliveryFee", cause)
		assert.Equal(t, "value is invalid: deliveryFee (cause: negative amount)", err.Error())
	})

	t.Run("sanitize strips newlines", func(t *testing.T) {
		cause := errors.New("first\nsecond")
		err := errs.NewValueIsInvalidErrorWithCause("address", cause)
		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "PH-0"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewDuplicateIDError("orderId", "PH-0"), errs.ErrDuplicateID)
	require.ErrorIs(t, errs.NewInvalidStateError("no address"), errs.ErrInvalidState)
	require.ErrorIs(t, errs.NewValueIsRequiredError("items"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsInvalidError("size"), errs.ErrValueIsInvalid)
}
