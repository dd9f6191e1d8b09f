package queries

import (
	"context"

	"warehouse/internal/core/ports"
)

// GetLayoutsQueryHandler lists the catalog contents alongside the active
// layout selection.
type GetLayoutsQueryHandler struct {
	catalog ports.LayoutCatalog
	state   ports.WarehouseState
}

// NewGetLayoutsQueryHandler creates a handler for layout listing queries.
func NewGetLayoutsQueryHandler(
	catalog ports.LayoutCatalog,
	state ports.WarehouseState,
) GetLayoutsQueryHandler {
	return GetLayoutsQueryHandler{catalog: catalog, state: state}
}

// Handle executes the query against the catalog and the shared state.
func (h GetLayoutsQueryHandler) Handle(
	_ context.Context,
	query GetLayoutsQuery,
) (GetLayoutsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLayoutsQueryResponse{}, err
	}

	return GetLayoutsQueryResponse{
		Names:             h.catalog.Names(),
		CurrentLayoutName: h.state.CurrentLayout().Name(),
	}, nil
}
