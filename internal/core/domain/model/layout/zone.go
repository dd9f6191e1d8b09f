package layout

import (
	"errors"
	"fmt"
	"slices"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrZoneIsNotConstructed is returned when attempting to use an improperly
// initialized Zone. Zones must be created using the NewZone constructor.
var ErrZoneIsNotConstructed = errs.NewValueIsRequiredError(
	"zone must be created via NewZone constructor")

// Zone represents a warehouse subdivision with a bounded shelf coordinate
// area and an allowed set of item types.
//
// Zone follows these invariants:
//   - Must have a non-empty name
//   - Must declare at least one item type, none of them empty
//   - Must have valid shelf coordinate ranges on both axes
//
// Zone is an immutable value object; accessors return defensive copies of
// internal slices so callers cannot mutate a zone after construction.
type Zone struct { //nolint:recvcheck //using for validation
	name      string
	itemTypes []string
	xRange    kernel.Range
	yRange    kernel.Range
	guard     guard.ConstructorGuard
}

// NewZone creates a new Zone with validation. This is the only way to create
// a valid Zone, ensuring all invariants are maintained.
//
// Parameters:
//   - name: Zone name, unique within its layout (must be non-empty)
//   - itemTypes: Item types stored in the zone (at least one, none empty)
//   - xRange, yRange: Inclusive shelf coordinate bounds
func NewZone(name string, itemTypes []string, xRange kernel.Range, yRange kernel.Range) (Zone, error) {
	zone := Zone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		zone.setName(name),
		zone.setItemTypes(itemTypes),
		zone.setRanges(xRange, yRange),
	); err != nil {
		return Zone{}, err
	}

	return zone, nil
}

// Validate ensures the Zone instance was properly constructed through NewZone.
func (z Zone) Validate() error {
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// Name returns the zone name.
func (z Zone) Name() string {
	return z.name
}

// ItemTypes returns a copy of the item types stored in the zone,
// in declaration order.
func (z Zone) ItemTypes() []string {
	return slices.Clone(z.itemTypes)
}

// ItemTypeCount returns the number of declared item types.
func (z Zone) ItemTypeCount() int {
	return len(z.itemTypes)
}

// ItemTypeAt returns the item type at the given declaration index.
func (z Zone) ItemTypeAt(i int) string {
	return z.itemTypes[i]
}

// XRange returns the inclusive shelf bounds on the x axis.
func (z Zone) XRange() kernel.Range {
	return z.xRange
}

// YRange returns the inclusive shelf bounds on the y axis.
func (z Zone) YRange() kernel.Range {
	return z.yRange
}

// Contains reports whether the shelf location lies within the zone's
// declared coordinate bounds.
func (z Zone) Contains(loc kernel.ShelfLocation) bool {
	return z.xRange.Contains(loc.X()) && z.yRange.Contains(loc.Y())
}

// HasItemType reports whether the zone declares the given item type.
func (z Zone) HasItemType(itemType string) bool {
	return slices.Contains(z.itemTypes, itemType)
}

// String returns a human-readable representation for logging and debugging.
func (z Zone) String() string {
	return fmt.Sprintf("Zone(%s, x%s, y%s)", z.name, z.xRange, z.yRange)
}

func (z *Zone) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	z.name = name
	return nil
}

func (z *Zone) setItemTypes(itemTypes []string) error {
	if len(itemTypes) == 0 {
		return errs.NewValueIsRequiredError("itemTypes")
	}

	for _, itemType := range itemTypes {
		if itemType == "" {
			return errs.NewValueIsInvalidErrorWithCause("itemTypes",
				errors.New("item type must not be empty"))
		}
	}

	z.itemTypes = slices.Clone(itemTypes)
	return nil
}

func (z *Zone) setRanges(xRange kernel.Range, yRange kernel.Range) error {
	if err := errors.Join(xRange.Validate(), yRange.Validate()); err != nil {
		return err
	}

	z.xRange = xRange
	z.yRange = yRange
	return nil
}
