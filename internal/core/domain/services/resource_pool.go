package services

import (
	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/vehicle"
	"catering/internal/pkg/errs"
)

// ResourcePool allocates drivers and vehicles. Both finders scan in the
// order the resources were registered and return the first available one.
type ResourcePool struct{}

func NewResourcePool() ResourcePool {
	return ResourcePool{}
}

// FindAvailableDriver returns nil when every driver is busy.
func (ResourcePool) FindAvailableDriver(drivers []*driver.Driver) *driver.Driver {
	for _, d := range drivers {
		if d != nil && d.IsAvailable() {
			return d
		}
	}
	return nil
}

// FindAvailableVehicle returns nil when every vehicle is busy.
func (ResourcePool) FindAvailableVehicle(vehicles []*vehicle.Vehicle) *vehicle.Vehicle {
	for _, v := range vehicles {
		if v != nil && v.IsAvailable() {
			return v
		}
	}
	return nil
}

// Reserve marks the driver and the vehicle as busy. A nil vehicle stands for
// a vehicle id that is not registered and reserves nothing. Availability of
// both is checked before anything changes, so a failed call reserves nothing.
func (ResourcePool) Reserve(d *driver.Driver, v *vehicle.Vehicle) error {
	if d == nil {
		return errs.NewResourceIsUnavailableError("driver", "")
	}
	if !d.IsAvailable() {
		return errs.NewResourceIsUnavailableError("driver", d.ID())
	}
	if v != nil && !v.IsAvailable() {
		return errs.NewResourceIsUnavailableError("vehicle", v.ID())
	}

	if err := d.Reserve(); err != nil {
		return err
	}
	if v != nil {
		if err := v.Reserve(); err != nil {
			d.Release()
			return err
		}
	}
	return nil
}

// Release makes the driver and the vehicle available again. Nil resources
// and already available ones are skipped.
func (ResourcePool) Release(d *driver.Driver, v *vehicle.Vehicle) {
	if d != nil {
		d.Release()
	}
	if v != nil {
		v.Release()
	}
}
