package queries

import (
	"context"

	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/ports"
)

// GetLayoutQueryHandler resolves a layout name against the catalog.
type GetLayoutQueryHandler struct {
	catalog ports.LayoutCatalog
}

// NewGetLayoutQueryHandler creates a handler for single-layout queries.
func NewGetLayoutQueryHandler(catalog ports.LayoutCatalog) GetLayoutQueryHandler {
	return GetLayoutQueryHandler{catalog: catalog}
}

// Handle executes the query against the catalog.
// Returns *errs.ObjectNotFoundError if the name is not registered.
func (h GetLayoutQueryHandler) Handle(
	_ context.Context,
	query GetLayoutQuery,
) (layout.Layout, error) {
	if err := query.Validate(); err != nil {
		return layout.Layout{}, err
	}

	return h.catalog.Get(query.Name())
}
