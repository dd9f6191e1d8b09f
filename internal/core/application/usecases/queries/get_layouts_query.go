package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var (
	ErrGetLayoutsQueryIsNotConstructed = errors.New(
		"GetLayoutsQuery must be created via NewGetLayoutsQuery constructor",
	)
)

// GetLayoutsQuery retrieves the names of all layouts in the catalog together
// with the name of the layout currently used for generation.
//
// Example:
//
//	query := NewGetLayoutsQuery()
//	handler := NewGetLayoutsQueryHandler(catalog, state)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve layouts: %w", err)
//	}
//	fmt.Printf("Active layout: %s of %d\n", response.CurrentLayoutName, len(response.Names))
type GetLayoutsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLayoutsQuery creates a query to list the available layouts.
// This is a parameterless query that fetches the complete catalog listing.
func NewGetLayoutsQuery() GetLayoutsQuery {
	return GetLayoutsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLayoutsQueryIsNotConstructed if validation fails.
func (q GetLayoutsQuery) Validate() error {
	return q.guard.Validate(ErrGetLayoutsQueryIsNotConstructed)
}

// GetLayoutsQueryResponse lists the catalog contents in the read model.
type GetLayoutsQueryResponse struct {
	// Names holds every layout name registered in the catalog,
	// in registration order.
	Names []string

	// CurrentLayoutName is the layout used for new generations.
	CurrentLayoutName string
}
