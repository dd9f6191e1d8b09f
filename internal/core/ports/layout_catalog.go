package ports

import (
	"warehouse/internal/core/domain/model/layout"
)

// LayoutCatalog is the read-only registry of warehouse layout definitions.
// Layouts are loaded once at process start and are immutable thereafter;
// there are no runtime edits.
type LayoutCatalog interface {
	// Get retrieves a layout by its unique name.
	// Returns *errs.ObjectNotFoundError if the name is not registered.
	Get(name string) (layout.Layout, error)

	// Names returns all registered layout names in a stable order.
	Names() []string
}
