// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding bill, kitchen assignment, delivery assignment and queue position
//   - Status: the forward-only state machine PLACED -> PREPARING -> READY -> OUT_FOR_DELIVERY -> DELIVERED
//   - Category: NORMAL or PRIORITY, chosen when preparation starts
//
// Key business rules:
//   - Orders are never deleted, only moved to DELIVERED
//   - A transition requested from the wrong state fails with errs.StateIsInvalidError
//     and leaves the order unchanged
//   - Readiness is reached only through the preparation scheduler, never by a direct request
//   - Delivered orders leave the queue (position 0)
package order
