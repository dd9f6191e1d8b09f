package inmem

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
)

// DefaultLayoutName is the layout active at startup unless configured otherwise.
const DefaultLayoutName = "walmart_style"

// zoneSpec is the compact form the built-in layout definitions are written in.
type zoneSpec struct {
	name                   string
	itemTypes              []string
	xMin, xMax, yMin, yMax int
}

// DefaultLayouts builds the four built-in warehouse layouts.
// Shelf ranges are inclusive grid coordinate bounds.
func DefaultLayouts() ([]layout.Layout, error) {
	specs := []struct {
		name  string
		zones []zoneSpec
	}{
		{
			name: "walmart_style",
			zones: []zoneSpec{
				{"electronics", []string{"laptops", "phones", "tablets"}, 2, 7, 2, 5},
				{"clothing", []string{"shirts", "pants", "shoes"}, 12, 17, 2, 5},
				{"groceries", []string{"canned_goods", "frozen_foods", "produce"}, 2, 7, 7, 10},
				{"home", []string{"furniture", "appliances", "decor"}, 12, 17, 7, 10},
			},
		},
		{
			name: "amazon_style",
			zones: []zoneSpec{
				{"books", []string{"fiction", "non_fiction", "textbooks"}, 1, 6, 1, 4},
				{"electronics", []string{"computers", "accessories", "gaming"}, 11, 16, 1, 4},
				{"fashion", []string{"clothing", "jewelry", "watches"}, 1, 6, 6, 9},
				{"home", []string{"kitchen", "bathroom", "bedroom"}, 11, 16, 6, 9},
			},
		},
		{
			name: "target_style",
			zones: []zoneSpec{
				{"apparel", []string{"men", "women", "kids", "accessories"}, 1, 4, 1, 6},
				{"home", []string{"furniture", "decor", "kitchen", "bath"}, 11, 14, 1, 6},
				{"seasonal", []string{"holiday", "outdoor", "garden"}, 6, 9, 1, 4},
				{"essentials", []string{"health", "beauty", "cleaning"}, 6, 9, 6, 9},
			},
		},
		{
			name: "costco_style",
			zones: []zoneSpec{
				{"bulk_goods", []string{"paper_products", "cleaning_supplies", "beverages"}, 2, 9, 2, 7},
				{"electronics", []string{"tvs", "computers", "appliances"}, 12, 17, 2, 5},
				{"food", []string{"frozen_foods", "dairy", "meat", "produce"}, 2, 9, 9, 12},
				{"clothing", []string{"casual_wear", "work_wear", "seasonal"}, 12, 17, 7, 10},
			},
		},
	}

	layouts := make([]layout.Layout, 0, len(specs))
	for _, spec := range specs {
		zones := make([]layout.Zone, 0, len(spec.zones))

		for _, zs := range spec.zones {
			xRange, err := kernel.NewRange(zs.xMin, zs.xMax)
			if err != nil {
				return nil, err
			}
			yRange, err := kernel.NewRange(zs.yMin, zs.yMax)
			if err != nil {
				return nil, err
			}

			zone, err := layout.NewZone(zs.name, zs.itemTypes, xRange, yRange)
			if err != nil {
				return nil, err
			}
			zones = append(zones, zone)
		}

		l, err := layout.NewLayout(spec.name, zones)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, l)
	}

	return layouts, nil
}

// NewDefaultCatalog creates a catalog holding the built-in layouts.
func NewDefaultCatalog() (*Catalog, error) {
	layouts, err := DefaultLayouts()
	if err != nil {
		return nil, err
	}

	return NewCatalog(layouts...)
}
