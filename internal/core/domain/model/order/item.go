package order

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when attempting to use an improperly
// initialized Item. Items must be created using the NewItem constructor.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem constructor")

// Item represents one line of an order: a quantity of a single item type to
// be picked from a specific shelf in a specific zone.
//
// Item follows these invariants:
//   - The shelf location lies within the declared bounds of its zone
//   - The item type belongs to the zone's declared item types
//   - Priority is within {1,2,3}; quantity is at least 1
//
// These invariants bind the item to the layout that was active when the
// order was generated; layout swaps never retroactively alter items.
// Item is an immutable value object.
type Item struct { //nolint:recvcheck //using for validation
	itemID        string
	shelfLocation kernel.ShelfLocation
	zoneName      string
	itemType      string
	priority      Priority
	quantity      int
	guard         guard.ConstructorGuard
}

// NewItem creates a new Item with validation against the zone it is drawn from.
//
// Parameters:
//   - zone: The zone the item is picked from (must be properly constructed)
//   - shelfLocation: Shelf position, validated against the zone's bounds
//   - itemType: Item type, validated against the zone's declared types
//   - priority: Pick priority in {1,2,3}
//   - quantity: Number of units to pick (at least 1)
//
// The item ID is derived as "<zone>_<itemType>_<x>_<y>".
func NewItem(
	zone layout.Zone,
	shelfLocation kernel.ShelfLocation,
	itemType string,
	priority Priority,
	quantity int,
) (Item, error) {
	if err := errors.Join(zone.Validate(), shelfLocation.Validate()); err != nil {
		return Item{}, err
	}

	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setShelfLocation(zone, shelfLocation),
		item.setItemType(zone, itemType),
		item.setPriority(priority),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.zoneName = zone.Name()
	item.itemID = fmt.Sprintf("%s_%s_%d_%d",
		zone.Name(), itemType, shelfLocation.X(), shelfLocation.Y())

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ItemID returns the derived item identifier.
func (i Item) ItemID() string {
	return i.itemID
}

// ShelfLocation returns the shelf position of the item.
func (i Item) ShelfLocation() kernel.ShelfLocation {
	return i.shelfLocation
}

// Zone returns the name of the zone the item is picked from.
func (i Item) Zone() string {
	return i.zoneName
}

// ItemType returns the item type.
func (i Item) ItemType() string {
	return i.itemType
}

// Priority returns the pick priority.
func (i Item) Priority() Priority {
	return i.priority
}

// Quantity returns the number of units to pick.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setShelfLocation(zone layout.Zone, shelfLocation kernel.ShelfLocation) error {
	if !zone.Contains(shelfLocation) {
		return errs.NewValueIsInvalidErrorWithCause("shelfLocation",
			fmt.Errorf("%s is outside zone %s bounds x%s y%s",
				shelfLocation, zone.Name(), zone.XRange(), zone.YRange()))
	}

	i.shelfLocation = shelfLocation
	return nil
}

func (i *Item) setItemType(zone layout.Zone, itemType string) error {
	if itemType == "" {
		return errs.NewValueIsRequiredError("itemType")
	}

	if !zone.HasItemType(itemType) {
		return errs.NewValueIsInvalidErrorWithCause("itemType",
			fmt.Errorf("%q is not declared by zone %s", itemType, zone.Name()))
	}

	i.itemType = itemType
	return nil
}

func (i *Item) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	i.priority = priority
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}

	i.quantity = quantity
	return nil
}
