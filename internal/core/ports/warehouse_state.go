package ports

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/domain/model/order"
)

// ErrInvalidLimit is returned when a history limit is not a positive integer.
var ErrInvalidLimit = errors.New("limit must be a positive integer")

// Stats is a point-in-time snapshot of the simulation counters.
type Stats struct {
	// TotalGenerated counts every order ever generated by this process,
	// including orders evicted from the bounded history.
	TotalGenerated int64

	// CurrentLayoutName is the name of the layout used for new generations.
	CurrentLayoutName string

	// HistorySize is the number of orders currently retained in history.
	HistorySize int

	// LastOrderTime is the creation time of the most recent order.
	// The zero time means no order has been generated yet.
	LastOrderTime time.Time
}

// WarehouseState is the single shared mutable resource of the simulation:
// the active layout selection, the order sequence counter, the bounded order
// history and the aggregate statistics. Implementations serialize all
// mutations; every method is safe for concurrent use.
type WarehouseState interface {
	// CurrentLayout returns a snapshot of the layout used for new generations.
	CurrentLayout() layout.Layout

	// SetLayout atomically swaps the active layout. The swap affects only
	// future generations; past orders are never altered.
	// Returns *errs.ObjectNotFoundError if the name is not in the catalog.
	SetLayout(name string) error

	// GenerateBatch reserves count consecutive sequence numbers, constructs
	// that many orders from the active layout, appends them to history in
	// sequence order and updates the statistics - all as one atomic step.
	// A failed call commits nothing: no sequence numbers are consumed and
	// no orders are appended.
	// Returns services.ErrEmptyLayout if the active layout has no zones.
	GenerateBatch(count int) ([]*order.Order, error)

	// History returns up to limit of the most recent orders,
	// most recent first. Returns ErrInvalidLimit if limit <= 0.
	History(limit int) ([]*order.Order, error)

	// Stats returns a snapshot of the simulation counters.
	Stats() Stats
}
