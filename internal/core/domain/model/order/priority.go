package order

import "warehouse/internal/pkg/errs"

// Priority represents the urgency of an item line.
// Valid priorities are the integers 1 (low) through 3 (high).
type Priority int

const (
	// PriorityLow marks routine items with no urgency.
	PriorityLow Priority = 1

	// PriorityMedium marks items that should be picked soon.
	PriorityMedium Priority = 2

	// PriorityHigh marks items that must be picked first.
	PriorityHigh Priority = 3
)

// Validate checks that the priority lies within the allowed {1,2,3} set.
func (p Priority) Validate() error {
	if p < PriorityLow || p > PriorityHigh {
		return errs.NewValueIsOutOfRangeError("priority", int(p), int(PriorityLow), int(PriorityHigh))
	}
	return nil
}

// Int returns the numeric wire value of the priority.
func (p Priority) Int() int {
	return int(p)
}
