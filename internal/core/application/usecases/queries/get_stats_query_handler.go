package queries

import (
	"context"

	"warehouse/internal/core/ports"
)

// GetStatsQueryHandler reads the simulation counters from the shared state.
// The snapshot is consistent: all fields reflect the same point in time
// even while generation runs concurrently.
type GetStatsQueryHandler struct {
	state ports.WarehouseState
}

// NewGetStatsQueryHandler creates a handler for stats queries.
func NewGetStatsQueryHandler(state ports.WarehouseState) GetStatsQueryHandler {
	return GetStatsQueryHandler{state: state}
}

// Handle executes the query against the shared state.
func (h GetStatsQueryHandler) Handle(
	_ context.Context,
	query GetStatsQuery,
) (ports.Stats, error) {
	if err := query.Validate(); err != nil {
		return ports.Stats{}, err
	}

	return h.state.Stats(), nil
}
