package commands

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/vehicle"
	"catering/internal/pkg/guard"
)

var ErrRegisterVehicleCommandIsNotConstructed = errors.New(
	"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
)

type RegisterVehicleCommand struct {
	vehicleID   string
	vehicleType string

	guard guard.ConstructorGuard
}

func NewRegisterVehicleCommand(vehicleID, vehicleType string) (RegisterVehicleCommand, error) {
	cmd := RegisterVehicleCommand{
		vehicleID:   strings.TrimSpace(vehicleID),
		vehicleType: strings.TrimSpace(vehicleType),
		guard:       guard.NewConstructorGuard(),
	}

	var errList []error
	if cmd.vehicleID == "" {
		errList = append(errList, vehicle.ErrIDIsRequired)
	}
	if cmd.vehicleType == "" {
		errList = append(errList, vehicle.ErrTypeIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return RegisterVehicleCommand{}, err
	}

	return cmd, nil
}

func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

func (c RegisterVehicleCommand) VehicleID() string {
	return c.vehicleID
}

func (c RegisterVehicleCommand) VehicleType() string {
	return c.vehicleType
}
