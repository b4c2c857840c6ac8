package commands

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/customer"
	"catering/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

type RegisterCustomerCommand struct {
	customerID string

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(customerID string) (RegisterCustomerCommand, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return RegisterCustomerCommand{}, customer.ErrIDIsRequired
	}

	return RegisterCustomerCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) CustomerID() string {
	return c.customerID
}
