package commands

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/vehicle"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// completeDelivery marks o delivered inside uow, releases its driver and
// vehicle and compacts the queue. drv may be nil when the order's driver is
// no longer registered. It returns the events of every changed order.
func completeDelivery(
	ctx context.Context,
	uow DeliveryUoW,
	dispatcher services.DeliveryDispatcher,
	o *order.Order,
	drv *driver.Driver,
) ([]ports.OrderChangedEvent, error) {
	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()
	vehicleRepo := uow.VehicleRepository()

	var v *vehicle.Vehicle
	if o.VehicleID() != "" {
		var err error
		v, err = vehicleRepo.Get(ctx, o.VehicleID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			v, err = nil, nil
		}
		if err != nil {
			return nil, err
		}
	}

	orders, err := orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	moved, err := dispatcher.Complete(o, drv, v, orders)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	for _, m := range moved {
		if err = orderRepo.Update(ctx, m); err != nil {
			return nil, err
		}
	}
	if drv != nil {
		if err = driverRepo.Update(ctx, drv); err != nil {
			return nil, err
		}
	}
	if v != nil {
		if err = vehicleRepo.Update(ctx, v); err != nil {
			return nil, err
		}
	}

	events := make([]ports.OrderChangedEvent, 0, len(moved)+1)
	for _, changed := range append([]*order.Order{o}, moved...) {
		event, err := changedEvent(ctx, orderRepo, changed)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// assignedDriver loads the driver recorded on o, nil when that driver is not
// registered.
func assignedDriver(ctx context.Context, repo ports.DriverRepository, o *order.Order) (*driver.Driver, error) {
	drv, err := repo.Get(ctx, o.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return drv, err
}
