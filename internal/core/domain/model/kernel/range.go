package kernel

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrRangeIsNotConstructed is returned when attempting to use an improperly initialized Range.
// Ranges must be created using the NewRange constructor to ensure validity.
var ErrRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"range must be created via NewRange constructor")

// Range represents an inclusive integer interval [Min, Max].
// It is an immutable value object used to describe shelf coordinate bounds
// of warehouse zones. The zero value is invalid and fails validation - use
// the constructor to create instances.
//
// Example:
//
//	xRange, err := kernel.NewRange(2, 7)
//	if err != nil {
//	    // Handle validation error
//	}
//	xRange.Contains(5) // true
type Range struct { //nolint:recvcheck //using for validation
	min   int
	max   int
	guard guard.ConstructorGuard
}

// NewRange creates a new Range with the given inclusive bounds.
// The lower bound must not be negative and must not exceed the upper bound.
func NewRange(minValue int, maxValue int) (Range, error) {
	r := Range{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(r.setMin(minValue), r.setMax(maxValue)); err != nil {
		return Range{}, err
	}

	if r.min > r.max {
		return Range{}, errs.NewValueIsInvalidErrorWithCause("range",
			fmt.Errorf("min %d is greater than max %d", minValue, maxValue))
	}

	return r, nil
}

// Validate checks if the Range was properly constructed using the constructor.
// Returns ErrRangeIsNotConstructed for zero-value instances, nil otherwise.
func (r Range) Validate() error {
	return r.guard.Validate(ErrRangeIsNotConstructed)
}

// Min returns the inclusive lower bound.
func (r Range) Min() int {
	return r.min
}

// Max returns the inclusive upper bound.
func (r Range) Max() int {
	return r.max
}

// Contains reports whether v lies inside the interval, bounds included.
func (r Range) Contains(v int) bool {
	return v >= r.min && v <= r.max
}

// Span returns the number of integer values covered by the interval.
func (r Range) Span() int {
	return r.max - r.min + 1
}

// String returns a human-readable representation in the format "[min..max]".
func (r Range) String() string {
	return fmt.Sprintf("[%d..%d]", r.min, r.max)
}

func (r *Range) setMin(minValue int) error {
	if minValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("min",
			fmt.Errorf("%d is negative", minValue))
	}

	r.min = minValue
	return nil
}

func (r *Range) setMax(maxValue int) error {
	if maxValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("max",
			fmt.Errorf("%d is negative", maxValue))
	}

	r.max = maxValue
	return nil
}
