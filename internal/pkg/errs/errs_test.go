package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "003")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "003", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 003", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("snapshot missing")
		err := errs.NewObjectNotFoundErrorWithCause("driver", "D1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: driver D1 (cause: snapshot missing)", err.Error())
	})

	t.Run("Error with numeric id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", 456)
		assert.Equal(t, "object not found: order 456", err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("customer", "C1")

	assert.Equal(t, "object already exists: customer C1", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("category")

		assert.Equal(t, "category", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: category", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown value URGENT")
		err := errs.NewValueIsInvalidErrorWithCause("category", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: category (cause: unknown value URGENT)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 7, 1, 5)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, 7, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is out of range: rating is 7, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 1, 100, cause)

		assert.Equal(t,
			"value is out of range: quantity is -5, min value is 1, max value is 100 (cause: validation failed)",
			err.Error())
	})

	t.Run("values with newlines stay on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("comment", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerID")

		assert.Equal(t, "value is required: customerID", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("items", errors.New("empty selection"))

		assert.Equal(t, "value is required: items (cause: empty selection)", err.Error())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("version")

		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: version", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidErrorWithCause("version", errors.New("got 7, want 1"))

		assert.Equal(t, "version is invalid: version (cause: got 7, want 1)", err.Error())
	})
}

func TestStateIsInvalidError(t *testing.T) {
	err := errs.NewStateIsInvalidError("order 001", "PLACED", "mark ready")

	assert.Equal(t, "state is invalid: order 001 is PLACED, cannot mark ready", err.Error())
	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
}

func TestResourceIsUnavailableError(t *testing.T) {
	t.Run("specific resource", func(t *testing.T) {
		err := errs.NewResourceIsUnavailableError("driver", "D1")
		assert.Equal(t, "resource is unavailable: driver D1", err.Error())
	})

	t.Run("no free resource", func(t *testing.T) {
		err := errs.NewResourceIsUnavailableError("vehicle", "")
		assert.Equal(t, "resource is unavailable: no free vehicle", err.Error())
		require.ErrorIs(t, err, errs.ErrResourceIsUnavailable)
	})
}

func TestAuthenticationMismatchError(t *testing.T) {
	err := errs.NewAuthenticationMismatchError("license")

	assert.Equal(t, "authentication mismatch: license", err.Error())
	require.ErrorIs(t, err, errs.ErrAuthenticationMismatch)
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("assign delivery: %w", errs.NewResourceIsUnavailableError("driver", "D2"))
		require.ErrorIs(t, wrapped, errs.ErrResourceIsUnavailable)
	})

	t.Run("errors.As extracts details", func(t *testing.T) {
		wrapped := fmt.Errorf("get order: %w", errs.NewObjectNotFoundError("order", "009"))

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, wrapped, &notFound)
		assert.Equal(t, "009", notFound.ID)
	})
}
