package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"warehouse/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly
	// validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a generated picking order. It is the aggregate root binding
// an identifier, the item lines drawn from the active layout, and the derived
// metrics computed at generation time.
//
// Order follows these invariants:
//   - Must have a valid sequence-derived identifier
//   - Must contain at least one item line
//   - TotalItems always equals the sum of the item quantities
//   - EstimatedPickTime is never negative
//   - Created in Pending status and never mutated afterwards
//
// The Order struct uses private fields to ensure encapsulation; once
// constructed, an order is immutable.
type Order struct {
	// id is the unique sequence-derived identifier
	id ID

	// items are the order lines, in generation order
	items []Item

	// createdAt is the generation timestamp
	createdAt time.Time

	// status is the lifecycle state; always Pending within this service
	status Status

	// totalItems is the derived sum of item quantities
	totalItems int

	// estimatedPickTime is the derived pick duration in seconds
	estimatedPickTime float64

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all invariants are maintained.
//
// Parameters:
//   - id: Sequence-derived order identifier
//   - items: At least one properly constructed item line
//   - createdAt: Generation timestamp (must not be the zero time)
//   - estimatedPickTime: Estimated pick duration in seconds (non-negative)
//
// TotalItems is derived from the item quantities; the order starts in
// Pending status.
func NewOrder(id ID, items []Item, createdAt time.Time, estimatedPickTime float64) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setCreatedAt(createdAt),
		o.setEstimatedPickTime(estimatedPickTime),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() ID {
	return o.id
}

// Items returns a copy of the order's item lines in generation order.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// ItemCount returns the number of item lines.
func (o *Order) ItemCount() int {
	return len(o.items)
}

// CreatedAt returns the generation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the lifecycle status of the order.
// Within this service it is always Pending.
func (o *Order) Status() Status {
	return o.status
}

// TotalItems returns the sum of the item quantities.
func (o *Order) TotalItems() int {
	return o.totalItems
}

// EstimatedPickTime returns the estimated pick duration in seconds.
func (o *Order) EstimatedPickTime() float64 {
	return o.estimatedPickTime
}

// setID validates and sets the order's identifier.
// This is a private method used only during construction.
func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setItems validates and sets the item lines, deriving totalItems.
// This is a private method used only during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := 0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.Quantity()
	}

	o.items = slices.Clone(items)
	o.totalItems = total
	return nil
}

// setCreatedAt validates and sets the generation timestamp.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// setEstimatedPickTime validates and sets the derived pick duration.
// This is a private method used only during construction.
func (o *Order) setEstimatedPickTime(estimatedPickTime float64) error {
	if estimatedPickTime < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedPickTime",
			fmt.Errorf("%f is negative", estimatedPickTime))
	}
	o.estimatedPickTime = estimatedPickTime
	return nil
}
