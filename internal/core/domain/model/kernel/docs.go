// Package kernel provides the value objects shared by every aggregate of the
// catering domain.
//
// The package includes:
//   - OrderNumber: the sequential, zero-padded identity of an order ("001", "002", ...)
//   - UUID: a random identifier used for feedback entries and guest customers
//   - Guest ids: generated customer ids carrying the GUEST_ prefix
//
// All values are immutable and safe for concurrent use.
package kernel
