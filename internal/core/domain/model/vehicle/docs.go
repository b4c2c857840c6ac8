// Package vehicle provides the Vehicle entity of the delivery fleet.
// Like drivers, a vehicle serves at most one delivery at a time.
package vehicle
