// Package layout contains the warehouse layout domain model.
//
// A Layout is a named warehouse configuration consisting of zones. Each Zone
// declares the item types it stores and the inclusive shelf coordinate ranges
// it occupies on the warehouse grid. Layouts are immutable value objects:
// they are assembled once when the catalog loads and never change afterwards,
// which makes them safe to share between concurrent order generations.
//
// Orders are bound to the layout that was active when they were generated;
// swapping the active layout never retroactively alters existing orders.
package layout
