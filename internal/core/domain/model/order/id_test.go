package order_test

import (
	"testing"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("valid_sequence", func(t *testing.T) {
		id, err := order.NewID(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Sequence())
		assert.Equal(t, "API_ORD_000042", id.String())
	})

	t.Run("zero_padding_to_six_digits", func(t *testing.T) {
		id, err := order.NewID(1)
		require.NoError(t, err)
		assert.Equal(t, "API_ORD_000001", id.String())

		id, err = order.NewID(999999)
		require.NoError(t, err)
		assert.Equal(t, "API_ORD_999999", id.String())
	})

	t.Run("sequence_above_padding_widens", func(t *testing.T) {
		id, err := order.NewID(1234567)

		require.NoError(t, err)
		assert.Equal(t, "API_ORD_1234567", id.String())
	})

	t.Run("zero_sequence", func(t *testing.T) {
		_, err := order.NewID(0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_sequence", func(t *testing.T) {
		_, err := order.NewID(-5)
		require.Error(t, err)
	})
}

func TestID_IsEqual(t *testing.T) {
	id1, err := order.NewID(7)
	require.NoError(t, err)
	id2, err := order.NewID(7)
	require.NoError(t, err)
	id3, err := order.NewID(8)
	require.NoError(t, err)

	assert.True(t, id1.IsEqual(id2))
	assert.False(t, id1.IsEqual(id3))
}

func TestID_Validate(t *testing.T) {
	t.Run("constructed_id_is_valid", func(t *testing.T) {
		id, err := order.NewID(1)
		require.NoError(t, err)
		require.NoError(t, id.Validate())
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id order.ID

		err := id.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrIDIsNotConstructed)
	})
}
