package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var (
	ErrGenerateOrdersCommandIsNotConstructed = errors.New(
		"GenerateOrdersCommand must be created via NewGenerateOrdersCommand constructor",
	)
)

// GenerateOrdersCommand requests the generation of one batch of simulated
// orders. The batch size is not part of the command: the handler owns the
// batch-size policy and draws it freshly per call.
//
// Example:
//
//	cmd := NewGenerateOrdersCommand()
//	handler := NewGenerateOrdersCommandHandler(state, rng, sim)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("generation failed: %w", err)
//	}
//	fmt.Printf("Batch %s produced %d orders\n", result.BatchID, len(result.Orders))
type GenerateOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewGenerateOrdersCommand creates a command to generate one batch of orders.
func NewGenerateOrdersCommand() GenerateOrdersCommand {
	return GenerateOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateOrdersCommandIsNotConstructed if validation fails.
func (c GenerateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrGenerateOrdersCommandIsNotConstructed)
}
