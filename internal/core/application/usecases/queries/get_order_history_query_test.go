package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderHistoryQuery_ValidInput(t *testing.T) {
	// Act
	query, err := queries.NewGetOrderHistoryQuery(queries.DefaultHistoryLimit)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 50, query.Limit())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrderHistoryQuery_InvalidLimit(t *testing.T) {
	testCases := []struct {
		name  string
		limit int
	}{
		{name: "zero", limit: 0},
		{name: "negative", limit: -5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			_, err := queries.NewGetOrderHistoryQuery(tc.limit)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, ports.ErrInvalidLimit)
		})
	}
}

func TestGetOrderHistoryQuery_DefaultConstructorFailsValidation(t *testing.T) {
	// Arrange
	var query queries.GetOrderHistoryQuery

	// Act
	err := query.Validate()

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderHistoryQueryIsNotConstructed)
}
