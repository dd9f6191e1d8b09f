package queries_test

import (
	"context"
	"testing"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsQueryHandler_Handle(t *testing.T) {
	t.Run("fresh_state_has_zero_counters", func(t *testing.T) {
		// Arrange
		state := newQueryState(t)
		handler := queries.NewGetStatsQueryHandler(state)

		// Act
		stats, err := handler.Handle(context.Background(), queries.NewGetStatsQuery())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalGenerated)
		assert.Equal(t, "walmart_style", stats.CurrentLayoutName)
		assert.Equal(t, 0, stats.HistorySize)
		assert.True(t, stats.LastOrderTime.IsZero())
	})

	t.Run("counters_follow_generation", func(t *testing.T) {
		// Arrange
		state := newQueryState(t)
		_, err := state.GenerateBatch(3)
		require.NoError(t, err)
		handler := queries.NewGetStatsQueryHandler(state)

		// Act
		stats, err := handler.Handle(context.Background(), queries.NewGetStatsQuery())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalGenerated)
		assert.Equal(t, 3, stats.HistorySize)
		assert.False(t, stats.LastOrderTime.IsZero())
	})

	t.Run("invalid_query_fails", func(t *testing.T) {
		// Arrange
		handler := queries.NewGetStatsQueryHandler(newQueryState(t))

		// Act
		_, err := handler.Handle(context.Background(), queries.GetStatsQuery{})

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetStatsQueryIsNotConstructed)
	})
}
