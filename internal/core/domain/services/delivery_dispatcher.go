package services

import (
	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/vehicle"
	"catering/internal/pkg/errs"
)

// DeliveryDispatcher couples the delivery transitions of an order with the
// resource pool and the queue.
type DeliveryDispatcher struct {
	pool  ResourcePool
	queue OrderQueue
}

func NewDeliveryDispatcher() DeliveryDispatcher {
	return DeliveryDispatcher{
		pool:  NewResourcePool(),
		queue: NewOrderQueue(),
	}
}

// AssignManual sends a Ready order out with the chosen driver. vehicleID is
// recorded on the order as given; v is the registered vehicle with that id,
// or nil when the id is unknown, in which case no vehicle is reserved.
func (d DeliveryDispatcher) AssignManual(o *order.Order, drv *driver.Driver, v *vehicle.Vehicle, vehicleID string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if _, err := o.Status().Dispatch(); err != nil {
		return err
	}
	if err := drv.Validate(); err != nil {
		return err
	}

	if err := d.pool.Reserve(drv, v); err != nil {
		return err
	}

	if err := o.AssignDelivery(drv.ID(), vehicleID); err != nil {
		d.pool.Release(drv, v)
		return err
	}

	return nil
}

// AssignAuto sends a Ready order out with the first available driver and the
// first available vehicle. When either is missing nothing is reserved.
func (d DeliveryDispatcher) AssignAuto(
	o *order.Order,
	drivers []*driver.Driver,
	vehicles []*vehicle.Vehicle,
) (*driver.Driver, *vehicle.Vehicle, error) {
	if err := o.Validate(); err != nil {
		return nil, nil, err
	}
	if _, err := o.Status().Dispatch(); err != nil {
		return nil, nil, err
	}

	drv := d.pool.FindAvailableDriver(drivers)
	if drv == nil {
		return nil, nil, errs.NewResourceIsUnavailableError("driver", "")
	}
	v := d.pool.FindAvailableVehicle(vehicles)
	if v == nil {
		return nil, nil, errs.NewResourceIsUnavailableError("vehicle", "")
	}

	if err := d.pool.Reserve(drv, v); err != nil {
		return nil, nil, err
	}

	if err := o.AssignDelivery(drv.ID(), v.ID()); err != nil {
		d.pool.Release(drv, v)
		return nil, nil, err
	}

	return drv, v, nil
}

// Complete marks the order delivered, releases its driver and vehicle (nil
// when not registered) and compacts the queue over orders. It returns the
// other orders whose queue position changed.
func (d DeliveryDispatcher) Complete(
	o *order.Order,
	drv *driver.Driver,
	v *vehicle.Vehicle,
	orders []*order.Order,
) ([]*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	removedPosition := o.QueuePosition()
	if err := o.MarkDelivered(); err != nil {
		return nil, err
	}

	d.pool.Release(drv, v)

	return d.queue.Compact(orders, o, removedPosition)
}
