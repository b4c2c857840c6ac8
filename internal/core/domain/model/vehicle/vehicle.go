package vehicle

import (
	"errors"
	"strings"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	ErrIDIsRequired            = errs.NewValueIsRequiredError("vehicle id")
	ErrTypeIsRequired          = errs.NewValueIsRequiredError("vehicle type")
)

type Vehicle struct {
	id          string
	vehicleType string
	available   bool

	guard guard.ConstructorGuard
}

// NewVehicle registers an available vehicle. The type is a free-form tag
// such as "Bike" or "Van".
func NewVehicle(id, vehicleType string) (*Vehicle, error) {
	return RestoreVehicle(id, vehicleType, true)
}

func RestoreVehicle(id, vehicleType string, available bool) (*Vehicle, error) {
	v := &Vehicle{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setType(vehicleType),
	); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) ID() string {
	return v.id
}

func (v *Vehicle) Type() string {
	return v.vehicleType
}

func (v *Vehicle) IsAvailable() bool {
	return v.available
}

// Reserve marks the vehicle as busy with a delivery.
func (v *Vehicle) Reserve() error {
	if !v.available {
		return errs.NewResourceIsUnavailableError("vehicle", v.id)
	}
	v.available = false
	return nil
}

// Release is idempotent.
func (v *Vehicle) Release() {
	v.available = true
}

func (v *Vehicle) Clone() *Vehicle {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

func (v *Vehicle) setID(id string) error {
	if id = strings.TrimSpace(id); id == "" {
		return ErrIDIsRequired
	}
	v.id = id
	return nil
}

func (v *Vehicle) setType(vehicleType string) error {
	if vehicleType = strings.TrimSpace(vehicleType); vehicleType == "" {
		return ErrTypeIsRequired
	}
	v.vehicleType = vehicleType
	return nil
}
