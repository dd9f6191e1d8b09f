package inmem

import (
	"fmt"
	"slices"

	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/pkg/errs"
)

// Catalog is an immutable in-memory layout registry keyed by layout name.
// It is populated once at construction and never mutated afterwards, which
// makes it safe for concurrent reads without synchronization.
type Catalog struct {
	layouts map[string]layout.Layout
	names   []string
}

// NewCatalog creates a catalog from the given layouts.
// Every layout must be properly constructed and names must be unique;
// registration order defines the stable order reported by Names.
func NewCatalog(layouts ...layout.Layout) (*Catalog, error) {
	catalog := &Catalog{
		layouts: make(map[string]layout.Layout, len(layouts)),
		names:   make([]string, 0, len(layouts)),
	}

	for _, l := range layouts {
		if err := l.Validate(); err != nil {
			return nil, err
		}

		if _, exists := catalog.layouts[l.Name()]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause("layouts",
				fmt.Errorf("duplicate layout name %q", l.Name()))
		}

		catalog.layouts[l.Name()] = l
		catalog.names = append(catalog.names, l.Name())
	}

	return catalog, nil
}

// Get retrieves a layout by name.
// Returns *errs.ObjectNotFoundError if the name is not registered.
func (c *Catalog) Get(name string) (layout.Layout, error) {
	l, ok := c.layouts[name]
	if !ok {
		return layout.Layout{}, errs.NewObjectNotFoundError("layout", name)
	}

	return l, nil
}

// Names returns the registered layout names in registration order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}
