// Package kernel provides core domain primitives for the warehouse simulator.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - ShelfLocation: A value object representing a shelf position on the warehouse grid
//   - Range: A value object for inclusive integer intervals, used for zone shelf bounds
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
