package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrPrepareOrderCommandIsNotConstructed = errors.New(
	"PrepareOrderCommand must be created via NewPrepareOrderCommand constructor",
)

// PrepareOrderCommand is the head chef accepting an order into the kitchen.
// Chef names are free text; they are not checked against registered chefs.
type PrepareOrderCommand struct {
	orderNumber kernel.OrderNumber
	category    order.Category
	chefs       []string
	etaMinutes  int

	guard guard.ConstructorGuard
}

func NewPrepareOrderCommand(
	orderNumber kernel.OrderNumber,
	category order.Category,
	chefs []string,
	etaMinutes int,
) (PrepareOrderCommand, error) {
	cmd := PrepareOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setCategory(category),
		cmd.setChefs(chefs),
		cmd.setEtaMinutes(etaMinutes),
	); err != nil {
		return PrepareOrderCommand{}, err
	}

	return cmd, nil
}

func (c PrepareOrderCommand) Validate() error {
	return c.guard.Validate(ErrPrepareOrderCommandIsNotConstructed)
}

func (c PrepareOrderCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

func (c PrepareOrderCommand) Category() order.Category {
	return c.category
}

func (c PrepareOrderCommand) Chefs() []string {
	return slices.Clone(c.chefs)
}

// EtaMinutes is advisory. It does not control when the order becomes ready.
func (c PrepareOrderCommand) EtaMinutes() int {
	return c.etaMinutes
}

func (c *PrepareOrderCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *PrepareOrderCommand) setCategory(category order.Category) error {
	if err := category.ValidateForPreparation(); err != nil {
		return err
	}
	c.category = category
	return nil
}

func (c *PrepareOrderCommand) setChefs(chefs []string) error {
	names := make([]string, 0, len(chefs))
	for _, chef := range chefs {
		if name := strings.TrimSpace(chef); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return order.ErrChefsAreRequired
	}
	c.chefs = names
	return nil
}

func (c *PrepareOrderCommand) setEtaMinutes(etaMinutes int) error {
	if etaMinutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("eta minutes", fmt.Errorf("%d is not greater than 0", etaMinutes))
	}
	c.etaMinutes = etaMinutes
	return nil
}
