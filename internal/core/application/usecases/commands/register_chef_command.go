package commands

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/chef"
	"catering/internal/pkg/guard"
)

var ErrRegisterChefCommandIsNotConstructed = errors.New(
	"RegisterChefCommand must be created via NewRegisterChefCommand constructor",
)

type RegisterChefCommand struct {
	name string

	guard guard.ConstructorGuard
}

func NewRegisterChefCommand(name string) (RegisterChefCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return RegisterChefCommand{}, chef.ErrNameIsRequired
	}

	return RegisterChefCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterChefCommand) Validate() error {
	return c.guard.Validate(ErrRegisterChefCommandIsNotConstructed)
}

func (c RegisterChefCommand) Name() string {
	return c.name
}
