package commands

import (
	"errors"

	"catering/internal/pkg/guard"
)

var ErrSaveStateCommandIsNotConstructed = errors.New(
	"SaveStateCommand must be created via NewSaveStateCommand constructor",
)

type SaveStateCommand struct {
	guard guard.ConstructorGuard
}

func NewSaveStateCommand() SaveStateCommand {
	return SaveStateCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c SaveStateCommand) Validate() error {
	return c.guard.Validate(ErrSaveStateCommandIsNotConstructed)
}
