// Package queries contains read operations for retrieving simulation state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/guard"
)

// DefaultHistoryLimit is the number of orders returned when a caller does
// not specify how many it wants.
const DefaultHistoryLimit = 50

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery retrieves the most recently generated orders,
// newest first. The limit bounds how many orders are returned; history
// shorter than the limit yields fewer orders.
//
// Example:
//
//	query, err := NewGetOrderHistoryQuery(DefaultHistoryLimit)
//	if err != nil {
//	    return fmt.Errorf("invalid history request: %w", err)
//	}
//
//	handler := NewGetOrderHistoryQueryHandler(state)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve history: %w", err)
//	}
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for the most recent orders.
// Returns ports.ErrInvalidLimit if limit is not a positive integer.
func NewGetOrderHistoryQuery(limit int) (GetOrderHistoryQuery, error) {
	query := GetOrderHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setLimit(limit); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// Limit returns the maximum number of orders the query asks for.
func (q GetOrderHistoryQuery) Limit() int {
	return q.limit
}

func (q *GetOrderHistoryQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ports.ErrInvalidLimit
	}

	q.limit = limit
	return nil
}
