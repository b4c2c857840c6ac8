package commands

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
	)
	ErrLicenseIsRequired = errs.NewValueIsRequiredError("license number")
)

// ConfirmDeliveryCommand is the driver confirming hand-over. The license
// number proves the driver is the one assigned to the order.
type ConfirmDeliveryCommand struct {
	orderNumber kernel.OrderNumber
	license     string

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(orderNumber kernel.OrderNumber, license string) (ConfirmDeliveryCommand, error) {
	license = strings.TrimSpace(license)

	if err := orderNumber.Validate(); err != nil {
		return ConfirmDeliveryCommand{}, err
	}
	if license == "" {
		return ConfirmDeliveryCommand{}, ErrLicenseIsRequired
	}

	return ConfirmDeliveryCommand{
		orderNumber: orderNumber,
		license:     license,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

func (c ConfirmDeliveryCommand) License() string {
	return c.license
}
