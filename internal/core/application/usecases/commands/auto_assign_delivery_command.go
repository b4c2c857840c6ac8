package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrAutoAssignDeliveryCommandIsNotConstructed = errors.New(
	"AutoAssignDeliveryCommand must be created via NewAutoAssignDeliveryCommand constructor",
)

// AutoAssignDeliveryCommand sends a ready order out with the first free
// driver and the first free vehicle.
type AutoAssignDeliveryCommand struct {
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

func NewAutoAssignDeliveryCommand(orderNumber kernel.OrderNumber) (AutoAssignDeliveryCommand, error) {
	if err := orderNumber.Validate(); err != nil {
		return AutoAssignDeliveryCommand{}, err
	}

	return AutoAssignDeliveryCommand{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AutoAssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignDeliveryCommandIsNotConstructed)
}

func (c AutoAssignDeliveryCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}
