package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var (
	ErrGetStatsQueryIsNotConstructed = errors.New(
		"GetStatsQuery must be created via NewGetStatsQuery constructor",
	)
)

// GetStatsQuery retrieves a snapshot of the simulation counters: total
// orders generated, active layout, retained history size and the time of
// the most recent order.
//
// Example:
//
//	query := NewGetStatsQuery()
//	handler := NewGetStatsQueryHandler(state)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve stats: %w", err)
//	}
//	fmt.Printf("Generated %d orders so far\n", stats.TotalGenerated)
type GetStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates a query for the simulation counters.
func NewGetStatsQuery() GetStatsQuery {
	return GetStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatsQueryIsNotConstructed if validation fails.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}
