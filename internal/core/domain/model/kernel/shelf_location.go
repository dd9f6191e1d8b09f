package kernel

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrShelfLocationIsNotConstructed is returned when attempting to use an improperly
// initialized ShelfLocation. Shelf locations must be created using the NewShelfLocation
// constructor to ensure validity.
var ErrShelfLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"shelf location must be created via NewShelfLocation constructor")

// ShelfLocation represents a shelf position on the warehouse grid.
// It is an immutable value object holding non-negative x and y coordinates.
// Whether a location lies inside a particular zone is decided by the zone's
// declared coordinate ranges, not by the location itself.
//
// The zero value of ShelfLocation is invalid and will fail validation -
// use the constructor to create instances.
//
// Example:
//
//	loc, err := kernel.NewShelfLocation(4, 9)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Shelf: %s", loc) // Output: Shelf(4,9)
type ShelfLocation struct { //nolint:recvcheck //using for validation
	x     int
	y     int
	guard guard.ConstructorGuard
}

// NewShelfLocation creates a new ShelfLocation with the specified coordinates.
// Both coordinates must be non-negative. Returns a validation error otherwise.
func NewShelfLocation(x int, y int) (ShelfLocation, error) {
	loc := ShelfLocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return ShelfLocation{}, err
	}

	return loc, nil
}

// Validate checks if the ShelfLocation was properly constructed using the constructor.
// Returns ErrShelfLocationIsNotConstructed for zero-value instances, nil otherwise.
func (l ShelfLocation) Validate() error {
	return l.guard.Validate(ErrShelfLocationIsNotConstructed)
}

// X returns the X coordinate of the shelf.
func (l ShelfLocation) X() int {
	return l.x
}

// Y returns the Y coordinate of the shelf.
func (l ShelfLocation) Y() int {
	return l.y
}

// String returns a human-readable representation in the format "Shelf(x,y)".
// This method implements the fmt.Stringer interface.
func (l ShelfLocation) String() string {
	return fmt.Sprintf("Shelf(%d,%d)", l.x, l.y)
}

// IsEqual compares two shelf locations for equality.
// Both locations must be properly constructed for the comparison to succeed.
func (l ShelfLocation) IsEqual(other ShelfLocation) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Distance calculates the Manhattan distance between two shelf locations:
// |x1-x2| + |y1-y2|. This matches picker movement along warehouse aisles,
// where travel is restricted to horizontal and vertical steps.
// Both locations must be properly constructed for the calculation to succeed.
func (l ShelfLocation) Distance(other ShelfLocation) (int, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dx := abs(l.x - other.x)
	dy := abs(l.y - other.y)
	return dx + dy, nil
}

// setX sets the x coordinate with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during object construction.
func (l *ShelfLocation) setX(x int) error {
	if x < 0 {
		return errs.NewValueIsInvalidErrorWithCause("x", fmt.Errorf("%d is negative", x))
	}

	l.x = x
	return nil
}

// setY sets the y coordinate with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during object construction.
func (l *ShelfLocation) setY(y int) error {
	if y < 0 {
		return errs.NewValueIsInvalidErrorWithCause("y", fmt.Errorf("%d is negative", y))
	}

	l.y = y
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
