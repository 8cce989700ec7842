// Package order provides the Order aggregate and its fulfillment state machine.
//
// The package includes:
//   - Order: partner order for a product, with quantity, cost and lifecycle dates
//   - Status: the linear workflow created -> prepaid -> in_production ->
//     delivered -> completed, plus the terminal cancelled status
//   - TransitionError / CancellationError: typed state machine violations
//
// Key business rules:
//   - Quantity and cost are positive and never change after creation
//   - Forward moves never skip a stage
//   - Manual cancellation is allowed from created or prepaid only
//   - The timeout sweep may cancel an order only while it is created
//   - Completed and cancelled orders never change again
//   - prepayment date is set exactly once, on created -> prepaid
//   - completion date is set exactly once, on delivered -> completed
package order
