package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var (
	ErrGetLayoutQueryIsNotConstructed = errors.New(
		"GetLayoutQuery must be created via NewGetLayoutQuery constructor",
	)
	ErrLayoutNameIsRequired = errors.New("layout name is required")
)

// GetLayoutQuery retrieves a single layout by name, regardless of whether
// it is the active one.
//
// Example:
//
//	query, err := NewGetLayoutQuery("costco_style")
//	if err != nil {
//	    return fmt.Errorf("invalid layout request: %w", err)
//	}
//
//	handler := NewGetLayoutQueryHandler(catalog)
//	l, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve layout: %w", err)
//	}
//	fmt.Printf("Layout %s has %d zones\n", l.Name(), l.ZoneCount())
type GetLayoutQuery struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewGetLayoutQuery creates a query for one layout.
// Validates that the name is not empty; existence is decided by the handler.
func NewGetLayoutQuery(name string) (GetLayoutQuery, error) {
	query := GetLayoutQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setName(name); err != nil {
		return GetLayoutQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLayoutQueryIsNotConstructed if validation fails.
func (q GetLayoutQuery) Validate() error {
	return q.guard.Validate(ErrGetLayoutQueryIsNotConstructed)
}

// Name returns the requested layout name.
func (q GetLayoutQuery) Name() string {
	return q.name
}

func (q *GetLayoutQuery) setName(name string) error {
	if name == "" {
		return ErrLayoutNameIsRequired
	}

	q.name = name
	return nil
}
