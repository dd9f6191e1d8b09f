package inmem

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// DefaultHistoryCapacity bounds the order history unless configured otherwise.
const DefaultHistoryCapacity = 1000

// WarehouseState is the mutex-guarded implementation of ports.WarehouseState.
//
// A single mutex serializes layout swaps, sequence-number reservation,
// history appends and statistics updates. One GenerateBatch call executes
// entirely inside one critical section: preconditions are checked before any
// sequence number is consumed, so a failed call commits nothing - no numbers
// are burned, no orders are appended, no counters move. Order construction
// is pure CPU work with no I/O, so holding the lock across the batch keeps
// the append order equal to the reservation order at no meaningful cost.
type WarehouseState struct {
	mu sync.Mutex

	catalog ports.LayoutCatalog
	factory services.OrderFactory
	rng     services.Rand

	current        layout.Layout
	nextSequence   int64
	history        []*order.Order
	capacity       int
	totalGenerated int64
	lastOrderTime  time.Time
}

// NewWarehouseState creates the shared simulation state.
//
// Parameters:
//   - catalog: The immutable layout registry
//   - factory: The order factory used for generation
//   - rng: The randomness source consumed by the factory
//   - defaultLayout: Name of the layout active at startup (must be in the catalog)
//   - capacity: Maximum number of orders retained in history (at least 1)
func NewWarehouseState(
	catalog ports.LayoutCatalog,
	factory services.OrderFactory,
	rng services.Rand,
	defaultLayout string,
	capacity int,
) (*WarehouseState, error) {
	if capacity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not at least 1", capacity))
	}

	current, err := catalog.Get(defaultLayout)
	if err != nil {
		return nil, err
	}

	return &WarehouseState{
		catalog:      catalog,
		factory:      factory,
		rng:          rng,
		current:      current,
		nextSequence: 1,
		capacity:     capacity,
	}, nil
}

// CurrentLayout returns a snapshot of the layout used for new generations.
func (s *WarehouseState) CurrentLayout() layout.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// SetLayout atomically swaps the active layout. In-flight generations are
// serialized by the same mutex, so a generation fully uses either the
// pre-swap or the post-swap layout, never a mix. Past orders are unaffected.
func (s *WarehouseState) SetLayout(name string) error {
	l, err := s.catalog.Get(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = l
	return nil
}

// GenerateBatch reserves count consecutive sequence numbers, constructs the
// orders from the active layout and appends them to history in sequence
// order, updating the statistics - all as one atomic step.
func (s *WarehouseState) GenerateBatch(count int) ([]*order.Order, error) {
	if count < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("count",
			fmt.Errorf("%d is not at least 1", count))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Confirm preconditions before consuming any sequence number.
	if s.current.IsEmpty() {
		return nil, services.ErrEmptyLayout
	}

	createdAt := time.Now()
	batch := make([]*order.Order, 0, count)

	for i := range count {
		o, err := s.factory.Create(s.current, s.nextSequence+int64(i), createdAt, s.rng)
		if err != nil {
			return nil, err
		}
		batch = append(batch, o)
	}

	// All orders exist; commit the batch.
	s.nextSequence += int64(count)
	s.history = append(s.history, batch...)
	if over := len(s.history) - s.capacity; over > 0 {
		s.history = slices.Delete(s.history, 0, over)
	}
	s.totalGenerated += int64(count)
	s.lastOrderTime = createdAt

	return batch, nil
}

// History returns up to limit of the most recent orders, most recent first.
func (s *WarehouseState) History(limit int) ([]*order.Order, error) {
	if limit <= 0 {
		return nil, ports.ErrInvalidLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := min(limit, len(s.history))
	result := make([]*order.Order, 0, n)
	for i := len(s.history) - 1; i >= len(s.history)-n; i-- {
		result = append(result, s.history[i])
	}

	return result, nil
}

// Stats returns a snapshot of the simulation counters.
func (s *WarehouseState) Stats() ports.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ports.Stats{
		TotalGenerated:    s.totalGenerated,
		CurrentLayoutName: s.current.Name(),
		HistorySize:       len(s.history),
		LastOrderTime:     s.lastOrderTime,
	}
}
