// Package services contains stateless domain services of the warehouse simulator.
//
// OrderFactory turns a layout and a reserved sequence number into one fully
// populated order; PickTimeEstimator derives the estimated pick duration from
// an order's item lines and the shelf geometry. Both are pure given their
// inputs: randomness enters only through an explicitly injected Rand source,
// so tests can drive generation with deterministic draws.
package services
