// Package order provides domain entities and business logic for order management
// in the épicerie marketplace. It implements the Order aggregate root with
// lifecycle management and role-gated state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - DeliveryType: The canonical pickup/home-delivery enum
//   - Item: An order line with its own preparation status
//
// Key business rules:
//   - Order status follows a defined workflow:
//     Pending -> Accepted -> Preparing -> Ready -> {Delivered | InDelivery -> Delivered},
//     with Cancelled reachable from Pending and Accepted
//   - Each transition is gated by the actor role requesting it; the single
//     transition table in this package is the only source of truth consulted by
//     every surface, so no screen recomputes its own branching
//   - A livreur may be assigned only once a home-delivery order is Ready, and
//     assignment never changes the status by itself
//   - Item preparation statuses are frozen once the order leaves preparation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
