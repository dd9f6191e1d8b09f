// Package inmem provides the in-memory adapters backing the core ports:
// the immutable layout catalog and the mutex-guarded warehouse state.
//
// The simulation is deliberately not durable - history and statistics live
// for the process lifetime only and are cleared by a restart. There is no
// deletion API; from the simulation's perspective both are append-only,
// with the bounded history evicting its oldest orders once the capacity
// is reached.
package inmem
