package kernel_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	t.Run("valid_bounds", func(t *testing.T) {
		r, err := kernel.NewRange(2, 7)

		require.NoError(t, err)
		assert.Equal(t, 2, r.Min())
		assert.Equal(t, 7, r.Max())
		assert.Equal(t, 6, r.Span())
	})

	t.Run("single_value_interval", func(t *testing.T) {
		r, err := kernel.NewRange(3, 3)

		require.NoError(t, err)
		assert.Equal(t, 1, r.Span())
		assert.True(t, r.Contains(3))
	})

	t.Run("min_greater_than_max", func(t *testing.T) {
		_, err := kernel.NewRange(8, 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_bounds", func(t *testing.T) {
		_, err := kernel.NewRange(-1, 5)
		require.Error(t, err)

		_, err = kernel.NewRange(0, -5)
		require.Error(t, err)
	})
}

func TestRange_Contains(t *testing.T) {
	r, err := kernel.NewRange(2, 7)
	require.NoError(t, err)

	tests := []struct {
		name     string
		value    int
		expected bool
	}{
		{"below_min", 1, false},
		{"at_min", 2, true},
		{"inside", 5, true},
		{"at_max", 7, true},
		{"above_max", 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Contains(tt.value))
		})
	}
}

func TestRange_Validate(t *testing.T) {
	t.Run("constructed_range_is_valid", func(t *testing.T) {
		r, err := kernel.NewRange(0, 10)
		require.NoError(t, err)
		require.NoError(t, r.Validate())
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var r kernel.Range

		err := r.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRange_String(t *testing.T) {
	r, err := kernel.NewRange(1, 4)
	require.NoError(t, err)

	assert.Equal(t, "[1..4]", r.String())
}
