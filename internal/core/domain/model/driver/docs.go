// Package driver provides the Driver entity of the delivery fleet.
//
// A driver is either available or fulfilling exactly one delivery. The
// availability flag is flipped only by the resource pool when a delivery is
// assigned or completed. The license number authenticates the driver at
// checkout and delivery confirmation.
package driver
