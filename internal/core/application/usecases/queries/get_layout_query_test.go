package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetLayoutQuery_ValidInput(t *testing.T) {
	// Act
	query, err := queries.NewGetLayoutQuery("walmart_style")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "walmart_style", query.Name())
	assert.NoError(t, query.Validate())
}

func TestNewGetLayoutQuery_EmptyName(t *testing.T) {
	// Act
	_, err := queries.NewGetLayoutQuery("")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrLayoutNameIsRequired)
}
