package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var (
	ErrSetLayoutCommandIsNotConstructed = errors.New(
		"SetLayoutCommand must be created via NewSetLayoutCommand constructor",
	)
	ErrLayoutNameIsRequired = errors.New("layout name is required")
)

// SetLayoutCommand represents a request to swap the active warehouse layout.
// The swap affects only future generations; orders already in history keep
// the layout they were generated against.
//
// Example:
//
//	cmd, err := NewSetLayoutCommand("amazon_style")
//	if err != nil {
//	    return fmt.Errorf("invalid layout request: %w", err)
//	}
//
//	handler := NewSetLayoutCommandHandler(state)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("layout swap failed: %w", err)
//	}
type SetLayoutCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewSetLayoutCommand creates a command to swap the active layout.
// Validates that the layout name is not empty; whether the name exists in
// the catalog is decided by the handler.
func NewSetLayoutCommand(name string) (SetLayoutCommand, error) {
	cmd := SetLayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return SetLayoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetLayoutCommandIsNotConstructed if validation fails.
func (c SetLayoutCommand) Validate() error {
	return c.guard.Validate(ErrSetLayoutCommandIsNotConstructed)
}

// Name returns the requested layout name.
func (c SetLayoutCommand) Name() string {
	return c.name
}

func (c *SetLayoutCommand) setName(name string) error {
	if name == "" {
		return ErrLayoutNameIsRequired
	}

	c.name = name
	return nil
}
