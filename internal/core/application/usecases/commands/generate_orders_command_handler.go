package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/metrics"
)

// Batch-size policy bounds: each generation call produces between 1 and 5
// orders, drawn uniformly per call. This draw is deliberately separate from
// the per-order item-count draw owned by the order factory.
const (
	minBatchSize = 1
	maxBatchSize = 5
)

// GenerateOrdersResult is the outcome of one generation call: the generated
// orders in sequence order, stamped with a batch identifier and timestamp.
type GenerateOrdersResult struct {
	BatchID     kernel.UUID
	GeneratedAt time.Time
	Orders      []*order.Order
}

// GenerateOrdersCommandHandler handles the business logic for batch order
// generation. It owns the batch-size randomization policy and delegates the
// atomic reservation/generation/append step to the warehouse state.
//
// Example:
//
//	handler := NewGenerateOrdersCommandHandler(state, services.SystemRand(), sim)
//	result, err := handler.Handle(ctx, NewGenerateOrdersCommand())
//	if err != nil {
//	    return fmt.Errorf("order generation failed: %w", err)
//	}
//	// result.Orders holds 1-5 freshly generated orders
type GenerateOrdersCommandHandler struct {
	state ports.WarehouseState
	rng   services.Rand
	sim   *metrics.SimulationMetrics
}

// NewGenerateOrdersCommandHandler creates a handler for order generation.
// Requires the shared warehouse state, a randomness source for the
// batch-size draw, and the simulation metrics collectors.
func NewGenerateOrdersCommandHandler(
	state ports.WarehouseState,
	rng services.Rand,
	sim *metrics.SimulationMetrics,
) GenerateOrdersCommandHandler {
	return GenerateOrdersCommandHandler{
		state: state,
		rng:   rng,
		sim:   sim,
	}
}

// Handle processes the generation command. It draws a batch size in [1,5],
// generates that many orders atomically and records the metrics.
// No partial batch is ever returned: the call either yields the full batch
// or fails without committing anything.
func (h GenerateOrdersCommandHandler) Handle(
	_ context.Context,
	cmd GenerateOrdersCommand,
) (GenerateOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return GenerateOrdersResult{}, err
	}

	batchSize := minBatchSize + h.rng.IntN(maxBatchSize-minBatchSize+1)

	orders, err := h.state.GenerateBatch(batchSize)
	if err != nil {
		return GenerateOrdersResult{}, err
	}

	h.sim.BatchesGenerated.Inc()
	for _, o := range orders {
		h.sim.OrdersGenerated.Inc()
		h.sim.EstimatedPickTime.Observe(o.EstimatedPickTime())
	}
	h.sim.HistorySize.Set(float64(h.state.Stats().HistorySize))

	return GenerateOrdersResult{
		BatchID:     kernel.NewUUID(),
		GeneratedAt: time.Now(),
		Orders:      orders,
	}, nil
}
