package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Pending ──> InProgress ──> Completed
//
// The simulator creates every order in Pending and never transitions it;
// picking-optimization tools consuming the feed own the downstream
// transitions. The state machine is still enforced here so that any
// collaborator moving an order forward cannot skip or reverse states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every generated order.
	Pending

	// InProgress indicates a picker has started collecting the order.
	InProgress

	// Completed indicates all items of the order have been picked.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, InProgress, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status: "pending", "in_progress" or
// "completed". Invalid values render as "unknown". This method implements
// the fmt.Stringer interface and doubles as the serialization form.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Start transitions the status to InProgress.
// Only Pending orders can be started.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status transition",
			fmt.Errorf("cannot start picking from %q", s))
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
// Only InProgress orders can be completed; Completed is final.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status transition",
			fmt.Errorf("cannot complete picking from %q", s))
	}
	return Completed, nil
}

// StatusFromString parses a wire name back into a Status.
// Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}
