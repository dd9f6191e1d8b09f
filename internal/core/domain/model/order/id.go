package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrIDIsNotConstructed is returned when attempting to use an improperly
// initialized ID. Order IDs must be created using the NewID constructor.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError(
	"order ID must be created via NewID constructor")

// idPrefix is the literal prefix of every order identifier on the wire.
const idPrefix = "API_ORD_"

// ID is the unique identifier of an order, derived from a strictly
// increasing sequence number reserved by the warehouse state. Two orders
// never share a sequence number for the lifetime of the process, which
// makes IDs globally unique and numerically ordered by creation.
//
// The wire format is "API_ORD_" followed by the zero-padded 6-digit
// sequence number, e.g. "API_ORD_000042".
type ID struct { //nolint:recvcheck //using for validation
	sequence int64
	guard    guard.ConstructorGuard
}

// NewID creates an order ID from a sequence number.
// The sequence must be positive; sequence numbers are supplied by the
// warehouse state, never self-assigned.
func NewID(sequence int64) (ID, error) {
	if sequence < 1 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not positive", sequence))
	}

	return ID{
		sequence: sequence,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the ID was properly constructed using the constructor.
func (id ID) Validate() error {
	return id.guard.Validate(ErrIDIsNotConstructed)
}

// Sequence returns the underlying sequence number.
func (id ID) Sequence() int64 {
	return id.sequence
}

// String returns the wire representation, e.g. "API_ORD_000042".
// Sequence numbers above 999999 widen the field rather than wrap.
// This method implements the fmt.Stringer interface.
func (id ID) String() string {
	return fmt.Sprintf("%s%06d", idPrefix, id.sequence)
}

// IsEqual compares two order IDs by sequence number.
func (id ID) IsEqual(other ID) bool {
	return id.sequence == other.sequence
}
