package commands

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/vehicle"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// AssignDeliveryCommandHandler sends a ready order out with a manually chosen
// driver and vehicle.
//
// Example:
//
//	handler := NewAssignDeliveryCommandHandler(uowFactory, publisher)
//	cmd, _ := NewAssignDeliveryCommand(number, "D1", "V1")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("unknown order or driver")
//	case errors.Is(err, errs.ErrResourceIsUnavailable):
//	    log.Println("driver or vehicle is busy")
//	case errors.Is(err, errs.ErrStateIsInvalid):
//	    log.Println("order is not ready")
//	}
type AssignDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	dispatcher services.DeliveryDispatcher
	publisher  ports.OrderEventPublisher
}

func NewAssignDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.OrderEventPublisher,
) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDeliveryDispatcher(),
		publisher:  publisher,
	}
}

// Handle checks, in order: the order exists, it is Ready, the driver exists,
// the driver is available, and a registered vehicle with the given id is
// available. A vehicle id nobody registered is recorded on the order without
// reserving anything.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()
	vehicleRepo := uow.VehicleRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}
	if _, err = o.Status().Dispatch(); err != nil {
		return err
	}

	drv, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	var v *vehicle.Vehicle
	if cmd.VehicleID() != "" {
		v, err = vehicleRepo.Get(ctx, cmd.VehicleID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			v, err = nil, nil
		}
		if err != nil {
			return err
		}
	}

	if err = h.dispatcher.AssignManual(o, drv, v, cmd.VehicleID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if err = driverRepo.Update(ctx, drv); err != nil {
		return err
	}
	if v != nil {
		if err = vehicleRepo.Update(ctx, v); err != nil {
			return err
		}
	}

	event, err := changedEvent(ctx, orderRepo, o)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, h.publisher, event)
	return nil
}
