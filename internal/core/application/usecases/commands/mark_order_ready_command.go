package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand finishes preparation. Only the readiness scheduler
// issues it; the API offers no manual way to mark an order ready.
type MarkOrderReadyCommand struct {
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

func NewMarkOrderReadyCommand(orderNumber kernel.OrderNumber) (MarkOrderReadyCommand, error) {
	if err := orderNumber.Validate(); err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return MarkOrderReadyCommand{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

func (c MarkOrderReadyCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}
