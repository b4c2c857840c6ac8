package commands

import (
	"context"

	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
)

// AutoAssignDeliveryResult names the resources that were reserved.
type AutoAssignDeliveryResult struct {
	DriverID  string
	VehicleID string
}

type AutoAssignDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	dispatcher services.DeliveryDispatcher
	publisher  ports.OrderEventPublisher
}

func NewAutoAssignDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.OrderEventPublisher,
) AutoAssignDeliveryCommandHandler {
	return AutoAssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDeliveryDispatcher(),
		publisher:  publisher,
	}
}

// Handle fails with ResourceIsUnavailable when no driver or no vehicle is
// free; in that case neither is reserved.
func (h AutoAssignDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd AutoAssignDeliveryCommand,
) (AutoAssignDeliveryResult, error) {
	if err := cmd.Validate(); err != nil {
		return AutoAssignDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AutoAssignDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()
	vehicleRepo := uow.VehicleRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderNumber())
	if err != nil {
		return AutoAssignDeliveryResult{}, err
	}

	drivers, err := driverRepo.GetAll(ctx)
	if err != nil {
		return AutoAssignDeliveryResult{}, err
	}

	vehicles, err := vehicleRepo.GetAll(ctx)
	if err != nil {
		return AutoAssignDeliveryResult{}, err
	}

	drv, v, err := h.dispatcher.AssignAuto(o, drivers, vehicles)
	if err != nil {
		return AutoAssignDeliveryResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return AutoAssignDeliveryResult{}, err
	}
	if err = driverRepo.Update(ctx, drv); err != nil {
		return AutoAssignDeliveryResult{}, err
	}
	if err = vehicleRepo.Update(ctx, v); err != nil {
		return AutoAssignDeliveryResult{}, err
	}

	event, err := changedEvent(ctx, orderRepo, o)
	if err != nil {
		return AutoAssignDeliveryResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AutoAssignDeliveryResult{}, err
	}

	publish(ctx, h.publisher, event)

	return AutoAssignDeliveryResult{
		DriverID:  drv.ID(),
		VehicleID: v.ID(),
	}, nil
}
