package commands

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand is the delivery manager picking a driver, and
// optionally a vehicle, for a ready order.
type AssignDeliveryCommand struct {
	orderNumber kernel.OrderNumber
	driverID    string
	vehicleID   string

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand requires a driver id. The vehicle id may be empty.
func NewAssignDeliveryCommand(orderNumber kernel.OrderNumber, driverID, vehicleID string) (AssignDeliveryCommand, error) {
	driverID = strings.TrimSpace(driverID)

	if err := orderNumber.Validate(); err != nil {
		return AssignDeliveryCommand{}, err
	}
	if driverID == "" {
		return AssignDeliveryCommand{}, order.ErrDriverIDIsRequired
	}

	return AssignDeliveryCommand{
		orderNumber: orderNumber,
		driverID:    driverID,
		vehicleID:   strings.TrimSpace(vehicleID),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

func (c AssignDeliveryCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

func (c AssignDeliveryCommand) DriverID() string {
	return c.driverID
}

func (c AssignDeliveryCommand) VehicleID() string {
	return c.vehicleID
}
