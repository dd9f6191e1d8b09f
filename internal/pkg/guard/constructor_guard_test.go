package guard_test

import (
	"errors"
	"testing"

	"warehouse/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Quantity struct {
		value int
		guard guard.ConstructorGuard
	}

	errQuantityNotConstructed := errors.New("Quantity must be created via NewQuantity")

	newQuantity := func(value int) (Quantity, error) {
		if value < 1 {
			return Quantity{}, errors.New("quantity must be at least 1")
		}
		return Quantity{
			value: value,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateQuantity := func(q Quantity) error {
		return q.guard.Validate(errQuantityNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		q, err := newQuantity(3)

		require.NoError(t, err)
		require.NoError(t, validateQuantity(q))
		assert.Equal(t, 3, q.value)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var q Quantity

		err := validateQuantity(q)

		require.Error(t, err)
		assert.Equal(t, errQuantityNotConstructed, err)
	})
}
