package commands

import (
	"context"

	"catering/internal/core/domain/model/vehicle"
)

type RegisterVehicleCommandHandler struct {
	uowFactory RegistryUoWFactory
}

func NewRegisterVehicleCommandHandler(uowFactory RegistryUoWFactory) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterVehicleCommandHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	v, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.VehicleType())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
