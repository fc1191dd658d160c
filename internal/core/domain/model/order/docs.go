// Package order provides domain entities and business logic for order
// management in the delivery system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, total value, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders reference exactly one customer and carry a bounded total value
//   - Order status follows the workflow PENDING -> CONFIRMED -> IN_PREPARATION
//     -> OUT_FOR_DELIVERY -> DELIVERED, with CANCELED reachable from every
//     non-terminal status
//   - DELIVERED and CANCELED are terminal; repeating the current status is an error
//   - Rejected transitions report the allowed targets for the current status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
