package commands

import (
	"context"

	"catering/internal/core/domain/model/customer"
)

type RegisterCustomerCommandHandler struct {
	uowFactory RegistryUoWFactory
}

func NewRegisterCustomerCommandHandler(uowFactory RegistryUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers a customer with no orders this month. Ids are unique and
// must not look like guest ids.
func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := customer.NewRegistered(cmd.CustomerID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
