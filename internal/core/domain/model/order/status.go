package order

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// Transitions are forward-only and there is no cancellation state:
//
//	Placed ──> Preparing ──> Ready ──> OutForDelivery ──> Delivered
//
// Each transition method returns the next status or a StateIsInvalidError
// when called from any other source state, leaving the caller's state intact.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status. The order waits in the kitchen queue.
	Placed

	// Preparing means a head chef accepted the order. The order is still queued
	// and becomes Ready after the preparation delay.
	Preparing

	// Ready means the kitchen finished and the order waits for a driver.
	Ready

	// OutForDelivery means a driver (and usually a vehicle) is reserved for the order.
	OutForDelivery

	// Delivered is the final state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Placed:         "PLACED",
		Preparing:      "PREPARING",
		Ready:          "READY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "PLACED",
		Preparing:      "PREPARING",
		Ready:          "READY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
	}
}

// ParseStatus converts the persisted name of a status ("OUT_FOR_DELIVERY") back
// into a Status. Matching is case-insensitive.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status", s))
}

// Validate checks if the Status value is one of the five lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether the order still counts towards the kitchen queue
// when a new order is placed.
func (s Status) IsActive() bool {
	return s == Placed || s == Preparing
}

// IsDelivered reports whether the order reached its final state.
func (s Status) IsDelivered() bool {
	return s == Delivered
}

// StartPreparing transitions Placed -> Preparing.
func (s Status) StartPreparing() (Status, error) {
	if s != Placed {
		return Unknown, s.invalidTransition("start preparing")
	}
	return Preparing, nil
}

// FinishPreparing transitions Preparing -> Ready.
func (s Status) FinishPreparing() (Status, error) {
	if s != Preparing {
		return Unknown, s.invalidTransition("mark ready")
	}
	return Ready, nil
}

// Dispatch transitions Ready -> OutForDelivery.
func (s Status) Dispatch() (Status, error) {
	if s != Ready {
		return Unknown, s.invalidTransition("assign delivery")
	}
	return OutForDelivery, nil
}

// Deliver transitions OutForDelivery -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != OutForDelivery {
		return Unknown, s.invalidTransition("mark delivered")
	}
	return Delivered, nil
}

func (s Status) invalidTransition(action string) error {
	return errs.NewStateIsInvalidError("order", s.String(), action)
}
