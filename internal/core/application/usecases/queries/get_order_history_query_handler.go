package queries

import (
	"context"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// GetOrderHistoryQueryHandler retrieves recent orders from the warehouse
// state. Reads a consistent snapshot; concurrent generation never produces
// a torn result.
//
// Example:
//
//	handler := NewGetOrderHistoryQueryHandler(state)
//	query, _ := NewGetOrderHistoryQuery(10)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get history: %v", err)
//	    return err
//	}
//	fmt.Printf("Found %d recent orders\n", len(orders))
type GetOrderHistoryQueryHandler struct {
	state ports.WarehouseState
}

// NewGetOrderHistoryQueryHandler creates a handler for history queries.
func NewGetOrderHistoryQueryHandler(state ports.WarehouseState) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{state: state}
}

// Handle executes the query against the shared state.
// Returns up to Limit orders, most recent first.
func (h GetOrderHistoryQueryHandler) Handle(
	_ context.Context,
	query GetOrderHistoryQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.state.History(query.Limit())
}
