package commands

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/driver"
	"catering/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

type RegisterDriverCommand struct {
	driverID string
	name     string
	license  string

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(driverID, name, license string) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		driverID: strings.TrimSpace(driverID),
		name:     strings.TrimSpace(name),
		license:  strings.TrimSpace(license),
		guard:    guard.NewConstructorGuard(),
	}

	var errList []error
	if cmd.driverID == "" {
		errList = append(errList, driver.ErrIDIsRequired)
	}
	if cmd.name == "" {
		errList = append(errList, driver.ErrNameIsRequired)
	}
	if cmd.license == "" {
		errList = append(errList, driver.ErrLicenseIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) DriverID() string {
	return c.driverID
}

func (c RegisterDriverCommand) Name() string {
	return c.name
}

func (c RegisterDriverCommand) License() string {
	return c.license
}
