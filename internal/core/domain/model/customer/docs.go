// Package customer models the two kinds of catering customers and the
// discount each kind is entitled to.
//
// A Customer is a tagged variant:
//   - Registered customers have a persistent id and a running count of orders
//     placed this calendar month; the count selects a discount tier.
//   - Guest customers get a generated GUEST_ id per order, never accumulate
//     orders and never get a discount. They are not stored.
//
// The discount computation is chosen by the Kind tag through a policy table,
// so adding a kind means adding a policy rather than another type switch.
package customer
