package errs_test

import (
	"errors"
	"testing"

	"netondemand/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("serviceId", "123")

		assert.Equal(t, "serviceId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("serviceId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: serviceId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("bandwidth")

		assert.Equal(t, "value is invalid: bandwidth", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("bandwidth", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: bandwidth (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("bandwidth", 1500, 100, 1000)

		assert.Equal(t, 1500, err.Value)
		assert.Equal(t, "value is invalid: 1500 is bandwidth, min value is 100, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("companyId")

	assert.Equal(t, "value is required: companyId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestServiceUnavailableError(t *testing.T) {
	err := errs.NewServiceUnavailableError("svc-42")

	assert.Equal(t, "service is not orderable: svc-42", err.Error())
	assert.True(t, errors.Is(err, errs.ErrServiceUnavailable))
}

func TestBandwidthOutOfRangeError(t *testing.T) {
	t.Run("with bounds", func(t *testing.T) {
		err := errs.NewBandwidthOutOfRangeError(50, 100, 1000)

		assert.Equal(t, "bandwidth is out of range: requested 50, min is 100, max is 1000", err.Error())
		assert.True(t, errors.Is(err, errs.ErrBandwidthOutOfRange))
	})

	t.Run("nil bandwidth fails closed", func(t *testing.T) {
		err := errs.NewBandwidthOutOfRangeError(nil, 100, 1000)

		assert.Contains(t, err.Error(), "requested <nil>")
	})
}

func TestAccessForbiddenError(t *testing.T) {
	err := errs.NewAccessForbiddenError("service instance", "inst-7")

	assert.Equal(t, "access forbidden: service instance inst-7 belongs to another company", err.Error())
	assert.True(t, errors.Is(err, errs.ErrAccessForbidden))
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("order", "cancel", "Completed")

	assert.Equal(t, "invalid state: cannot cancel order in state Completed", err.Error())
	assert.True(t, errors.Is(err, errs.ErrInvalidState))
}

func TestConcurrentModificationError(t *testing.T) {
	err := errs.NewConcurrentModificationError("order", "ord-1")

	assert.Equal(t, "concurrent modification: order ord-1 was modified concurrently", err.Error())
	assert.True(t, errors.Is(err, errs.ErrConcurrentModification))
}
