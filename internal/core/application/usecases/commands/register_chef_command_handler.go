package commands

import (
	"context"

	"catering/internal/core/domain/model/chef"
)

type RegisterChefCommandHandler struct {
	uowFactory RegistryUoWFactory
}

func NewRegisterChefCommandHandler(uowFactory RegistryUoWFactory) RegisterChefCommandHandler {
	return RegisterChefCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers a chef. Names are unique regardless of case.
func (h RegisterChefCommandHandler) Handle(ctx context.Context, cmd RegisterChefCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := chef.NewChef(cmd.Name())
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

	if err = uow.ChefRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
