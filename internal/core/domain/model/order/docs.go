// Package order contains the order domain model of the warehouse simulator.
//
// An Order is a generated unit of picking work: one or more item lines, each
// bound to a zone of the layout that was active at generation time. Orders
// are created exactly once by the order factory, appended to the history, and
// never mutated afterwards. Derived fields (total items, estimated pick time)
// are computed at construction and stay consistent for the order's lifetime.
//
// Order identifiers are derived from a strictly increasing sequence number
// and rendered as "API_ORD_" followed by the zero-padded 6-digit sequence.
package order
