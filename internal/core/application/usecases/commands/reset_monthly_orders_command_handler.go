package commands

import (
	"context"
)

type ResetMonthlyOrdersCommandHandler struct {
	uowFactory RegistryUoWFactory
}

func NewResetMonthlyOrdersCommandHandler(uowFactory RegistryUoWFactory) ResetMonthlyOrdersCommandHandler {
	return ResetMonthlyOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets every customer's monthly order count to zero and returns how
// many customers had a non-zero count.
func (h ResetMonthlyOrdersCommandHandler) Handle(ctx context.Context, cmd ResetMonthlyOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()

	customers, err := customerRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	reset := 0
	for _, c := range customers {
		if c.OrdersThisMonth() == 0 {
			continue
		}
		c.ResetMonthlyOrders()
		if err = customerRepo.Update(ctx, c); err != nil {
			return 0, err
		}
		reset++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return reset, nil
}
