package services

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/domain/model/order"
)

// ErrEmptyLayout is returned when order generation is attempted against a
// layout with no zones. A correctly populated catalog never contains one,
// so hitting this error indicates a catalog configuration defect.
var ErrEmptyLayout = errors.New("layout has no zones")

// Per-order draw bounds. Item-line count is drawn independently per order,
// not per batch; quantity is drawn independently per line.
const (
	minItemLines = 1
	maxItemLines = 5
	maxQuantity  = 3
)

// OrderFactory is a stateless domain service producing one fully populated
// order per call from a layout and an externally reserved sequence number.
//
// The factory is side-effect-free apart from consuming draws from the
// injected Rand. It never assigns sequence numbers itself; the warehouse
// state reserves them, which is what keeps order IDs unique under
// concurrent generation.
type OrderFactory struct {
	estimator PickTimeEstimator
}

// NewOrderFactory creates a new OrderFactory using the given estimator
// for the derived pick-time metric.
func NewOrderFactory(estimator PickTimeEstimator) OrderFactory {
	return OrderFactory{estimator: estimator}
}

// Create generates one order from the layout.
//
// Per order it draws an item-line count in [1,5]; per line it draws a zone
// uniformly from the layout, an item type uniformly from that zone, a shelf
// location uniformly within the zone's bounds, a priority uniformly from
// {1,2,3} and a quantity in [1,3]. Total items and estimated pick time are
// derived before the order is returned.
//
// Returns ErrEmptyLayout if the layout has no zones.
func (f OrderFactory) Create(
	l layout.Layout,
	sequence int64,
	createdAt time.Time,
	rng Rand,
) (*order.Order, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	if l.IsEmpty() {
		return nil, ErrEmptyLayout
	}

	id, err := order.NewID(sequence)
	if err != nil {
		return nil, err
	}

	lineCount := minItemLines + rng.IntN(maxItemLines-minItemLines+1)
	items := make([]order.Item, 0, lineCount)

	for range lineCount {
		item, itemErr := f.createItem(l, rng)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.NewOrder(id, items, createdAt, f.estimator.Estimate(items))
}

// createItem draws one item line from a uniformly chosen zone of the layout.
func (f OrderFactory) createItem(l layout.Layout, rng Rand) (order.Item, error) {
	zone := l.ZoneAt(rng.IntN(l.ZoneCount()))

	itemType := zone.ItemTypeAt(rng.IntN(zone.ItemTypeCount()))

	x := zone.XRange().Min() + rng.IntN(zone.XRange().Span())
	y := zone.YRange().Min() + rng.IntN(zone.YRange().Span())
	shelf, err := kernel.NewShelfLocation(x, y)
	if err != nil {
		return order.Item{}, err
	}

	priority := order.Priority(int(order.PriorityLow) + rng.IntN(int(order.PriorityHigh)))
	quantity := 1 + rng.IntN(maxQuantity)

	return order.NewItem(zone, shelf, itemType, priority, quantity)
}
