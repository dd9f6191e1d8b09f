package layout

import (
	"slices"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrLayoutIsNotConstructed is returned when attempting to use an improperly
// initialized Layout. Layouts must be created using the NewLayout constructor.
var ErrLayoutIsNotConstructed = errs.NewValueIsRequiredError(
	"layout must be created via NewLayout constructor")

// Layout represents a named warehouse configuration: an ordered sequence of
// zones covering the warehouse grid.
//
// Layout follows these invariants:
//   - Must have a non-empty name (the catalog key)
//   - Every zone must be a properly constructed Zone
//
// A Layout with zero zones is constructible - the catalog may carry it - but
// order generation rejects it, since no item can be drawn from it.
type Layout struct { //nolint:recvcheck //using for validation
	name  string
	zones []Zone
	guard guard.ConstructorGuard
}

// NewLayout creates a new Layout with validation.
//
// Parameters:
//   - name: Unique layout name used as the catalog key (must be non-empty)
//   - zones: Ordered zones of the warehouse; order is preserved
func NewLayout(name string, zones []Zone) (Layout, error) {
	l := Layout{
		guard: guard.NewConstructorGuard(),
	}

	if err := l.setName(name); err != nil {
		return Layout{}, err
	}

	if err := l.setZones(zones); err != nil {
		return Layout{}, err
	}

	return l, nil
}

// Validate ensures the Layout instance was properly constructed through NewLayout.
func (l Layout) Validate() error {
	return l.guard.Validate(ErrLayoutIsNotConstructed)
}

// Name returns the layout name.
func (l Layout) Name() string {
	return l.name
}

// Zones returns a copy of the layout's zones in declaration order.
func (l Layout) Zones() []Zone {
	return slices.Clone(l.zones)
}

// ZoneCount returns the number of zones in the layout.
func (l Layout) ZoneCount() int {
	return len(l.zones)
}

// ZoneAt returns the zone at the given declaration index.
func (l Layout) ZoneAt(i int) Zone {
	return l.zones[i]
}

// IsEmpty reports whether the layout has no zones.
// Empty layouts cannot produce orders.
func (l Layout) IsEmpty() bool {
	return len(l.zones) == 0
}

func (l *Layout) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	l.name = name
	return nil
}

func (l *Layout) setZones(zones []Zone) error {
	for _, zone := range zones {
		if err := zone.Validate(); err != nil {
			return err
		}
	}

	l.zones = slices.Clone(zones)
	return nil
}
