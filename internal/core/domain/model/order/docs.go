// Package order provides domain entities and business logic for order management
// in the restaurant system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: the aggregate root that manages order identity, items, and lifecycle
//   - Status: a state machine over the fulfillment workflow
//
// Key business rules:
//   - Orders must have non-empty items and a store-assigned monotonic identity
//   - Status follows the path received -> preparing -> ready -> completed
//   - Manual updates validate set membership; forward-only ordering is optional
//   - Confirmation (received -> preparing) is only valid while still received
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
