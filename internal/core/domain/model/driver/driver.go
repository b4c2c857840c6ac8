package driver

import (
	"errors"
	"strings"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	ErrIDIsRequired           = errs.NewValueIsRequiredError("driver id")
	ErrNameIsRequired         = errs.NewValueIsRequiredError("driver name")
	ErrLicenseIsRequired      = errs.NewValueIsRequiredError("license number")
)

type Driver struct {
	id        string
	name      string
	license   string
	available bool

	guard guard.ConstructorGuard
}

// NewDriver registers an available driver.
func NewDriver(id, name, license string) (*Driver, error) {
	return RestoreDriver(id, name, license, true)
}

// RestoreDriver rebuilds a driver from a store, keeping its availability.
func RestoreDriver(id, name, license string, available bool) (*Driver, error) {
	d := &Driver{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicense(license),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() string {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) License() string {
	return d.license
}

func (d *Driver) IsAvailable() bool {
	return d.available
}

// VerifyLicense reports whether license matches the registered license number.
// Surrounding whitespace is ignored, the comparison itself is exact.
func (d *Driver) VerifyLicense(license string) bool {
	return d.license == strings.TrimSpace(license)
}

// Reserve marks the driver as busy with a delivery.
func (d *Driver) Reserve() error {
	if !d.available {
		return errs.NewResourceIsUnavailableError("driver", d.id)
	}
	d.available = false
	return nil
}

// Release marks the driver as available again. Releasing an available driver
// is a no-op.
func (d *Driver) Release() {
	d.available = true
}

func (d *Driver) Clone() *Driver {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}

func (d *Driver) setID(id string) error {
	if id = strings.TrimSpace(id); id == "" {
		return ErrIDIsRequired
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name = strings.TrimSpace(name); name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setLicense(license string) error {
	if license = strings.TrimSpace(license); license == "" {
		return ErrLicenseIsRequired
	}
	d.license = license
	return nil
}
