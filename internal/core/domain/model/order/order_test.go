package order_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T) []order.Item {
	t.Helper()
	zone := electronicsZone(t)

	first, err := order.NewItem(zone, shelfAt(t, 3, 4), "laptops", order.PriorityHigh, 2)
	require.NoError(t, err)
	second, err := order.NewItem(zone, shelfAt(t, 5, 2), "phones", order.PriorityLow, 3)
	require.NoError(t, err)

	return []order.Item{first, second}
}

func TestNewOrder(t *testing.T) {
	id, err := order.NewID(1)
	require.NoError(t, err)
	createdAt := time.Now()

	t.Run("valid_order", func(t *testing.T) {
		items := validItems(t)

		o, err := order.NewOrder(id, items, createdAt, 120.5)

		require.NoError(t, err)
		assert.Equal(t, "API_ORD_000001", o.ID().String())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 2, o.ItemCount())
		assert.Equal(t, 5, o.TotalItems()) // 2 + 3
		assert.InDelta(t, 120.5, o.EstimatedPickTime(), 0.0001)
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("total_items_equals_quantity_sum", func(t *testing.T) {
		items := validItems(t)

		o, err := order.NewOrder(id, items, createdAt, 0)
		require.NoError(t, err)

		sum := 0
		for _, item := range o.Items() {
			sum += item.Quantity()
		}
		assert.Equal(t, sum, o.TotalItems())
	})

	t.Run("no_items", func(t *testing.T) {
		_, err := order.NewOrder(id, nil, createdAt, 10)
		require.Error(t, err)
	})

	t.Run("unconstructed_item", func(t *testing.T) {
		_, err := order.NewOrder(id, []order.Item{{}}, createdAt, 10)
		require.Error(t, err)
	})

	t.Run("unconstructed_id", func(t *testing.T) {
		_, err := order.NewOrder(order.ID{}, validItems(t), createdAt, 10)
		require.Error(t, err)
	})

	t.Run("zero_created_at", func(t *testing.T) {
		_, err := order.NewOrder(id, validItems(t), time.Time{}, 10)
		require.Error(t, err)
	})

	t.Run("negative_pick_time", func(t *testing.T) {
		_, err := order.NewOrder(id, validItems(t), createdAt, -1)
		require.Error(t, err)
	})

	t.Run("zero_pick_time_is_allowed", func(t *testing.T) {
		_, err := order.NewOrder(id, validItems(t), createdAt, 0)
		require.NoError(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed_order_is_valid", func(t *testing.T) {
		id, err := order.NewID(1)
		require.NoError(t, err)

		o, err := order.NewOrder(id, validItems(t), time.Now(), 10)
		require.NoError(t, err)
		require.NoError(t, o.Validate())
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_order_is_invalid", func(t *testing.T) {
		var o *order.Order

		require.Error(t, o.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id1, err := order.NewID(1)
	require.NoError(t, err)
	id2, err := order.NewID(2)
	require.NoError(t, err)

	o1, err := order.NewOrder(id1, validItems(t), time.Now(), 10)
	require.NoError(t, err)
	o1Again, err := order.NewOrder(id1, validItems(t), time.Now(), 20)
	require.NoError(t, err)
	o2, err := order.NewOrder(id2, validItems(t), time.Now(), 10)
	require.NoError(t, err)

	assert.True(t, o1.IsEqual(o1Again))
	assert.False(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(nil))
}

func TestOrder_ItemsIsACopy(t *testing.T) {
	id, err := order.NewID(1)
	require.NoError(t, err)

	o, err := order.NewOrder(id, validItems(t), time.Now(), 10)
	require.NoError(t, err)

	items := o.Items()
	items[0] = order.Item{}

	require.NoError(t, o.Items()[0].Validate())
}
