package queries_test

import (
	"context"
	"testing"

	"warehouse/internal/adapters/out/inmem"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryState(t *testing.T) *inmem.WarehouseState {
	t.Helper()

	catalog, err := inmem.NewDefaultCatalog()
	require.NoError(t, err)

	state, err := inmem.NewWarehouseState(
		catalog,
		services.NewOrderFactory(services.NewPickTimeEstimator()),
		services.SystemRand(),
		inmem.DefaultLayoutName,
		inmem.DefaultHistoryCapacity,
	)
	require.NoError(t, err)
	return state
}

func TestGetOrderHistoryQueryHandler_Handle(t *testing.T) {
	t.Run("returns_most_recent_orders_first", func(t *testing.T) {
		// Arrange
		state := newQueryState(t)
		_, err := state.GenerateBatch(4)
		require.NoError(t, err)

		handler := queries.NewGetOrderHistoryQueryHandler(state)
		query, err := queries.NewGetOrderHistoryQuery(2)
		require.NoError(t, err)

		// Act
		orders, err := handler.Handle(context.Background(), query)

		// Assert
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "API_ORD_000004", orders[0].ID().String())
		assert.Equal(t, "API_ORD_000003", orders[1].ID().String())
	})

	t.Run("empty_history_returns_empty_slice", func(t *testing.T) {
		// Arrange
		state := newQueryState(t)
		handler := queries.NewGetOrderHistoryQueryHandler(state)
		query, err := queries.NewGetOrderHistoryQuery(queries.DefaultHistoryLimit)
		require.NoError(t, err)

		// Act
		orders, err := handler.Handle(context.Background(), query)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("invalid_query_fails", func(t *testing.T) {
		// Arrange
		state := newQueryState(t)
		handler := queries.NewGetOrderHistoryQueryHandler(state)

		// Act
		_, err := handler.Handle(context.Background(), queries.GetOrderHistoryQuery{})

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetOrderHistoryQueryIsNotConstructed)
	})
}
