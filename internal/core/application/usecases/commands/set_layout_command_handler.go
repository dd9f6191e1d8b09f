package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// SetLayoutCommandHandler handles the business logic for layout swaps.
// Delegates the atomic swap to the warehouse state, which resolves the
// name against the catalog.
//
// Example:
//
//	handler := NewSetLayoutCommandHandler(state)
//	cmd, _ := NewSetLayoutCommand("target_style")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Failed to swap layout: %v", err)
//	    return err
//	}
type SetLayoutCommandHandler struct {
	state ports.WarehouseState
}

// NewSetLayoutCommandHandler creates a handler for layout swap commands.
func NewSetLayoutCommandHandler(state ports.WarehouseState) SetLayoutCommandHandler {
	return SetLayoutCommandHandler{state: state}
}

// Handle processes the layout swap command.
// Returns *errs.ObjectNotFoundError if the requested layout is not in the
// catalog; the active layout is kept unchanged in that case.
func (h SetLayoutCommandHandler) Handle(_ context.Context, cmd SetLayoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.state.SetLayout(cmd.Name())
}
