package queries_test

import (
	"context"
	"testing"

	"warehouse/internal/adapters/out/inmem"
	"warehouse/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLayoutsQueryHandler_Handle(t *testing.T) {
	t.Run("lists_catalog_and_active_layout", func(t *testing.T) {
		// Arrange
		catalog, err := inmem.NewDefaultCatalog()
		require.NoError(t, err)
		state := newQueryState(t)
		handler := queries.NewGetLayoutsQueryHandler(catalog, state)

		// Act
		response, err := handler.Handle(context.Background(), queries.NewGetLayoutsQuery())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{
			"walmart_style", "amazon_style", "target_style", "costco_style",
		}, response.Names)
		assert.Equal(t, "walmart_style", response.CurrentLayoutName)
	})

	t.Run("reflects_layout_swap", func(t *testing.T) {
		// Arrange
		catalog, err := inmem.NewDefaultCatalog()
		require.NoError(t, err)
		state := newQueryState(t)
		require.NoError(t, state.SetLayout("costco_style"))
		handler := queries.NewGetLayoutsQueryHandler(catalog, state)

		// Act
		response, err := handler.Handle(context.Background(), queries.NewGetLayoutsQuery())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "costco_style", response.CurrentLayoutName)
	})

	t.Run("invalid_query_fails", func(t *testing.T) {
		// Arrange
		catalog, err := inmem.NewDefaultCatalog()
		require.NoError(t, err)
		handler := queries.NewGetLayoutsQueryHandler(catalog, newQueryState(t))

		// Act
		_, err = handler.Handle(context.Background(), queries.GetLayoutsQuery{})

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetLayoutsQueryIsNotConstructed)
	})
}
