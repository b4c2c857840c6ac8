package commands

import (
	"errors"

	"catering/internal/pkg/guard"
)

var ErrLoadStateCommandIsNotConstructed = errors.New(
	"LoadStateCommand must be created via NewLoadStateCommand constructor",
)

// LoadStateCommand replaces the runtime state with the content of the
// entity store. It runs once at start-up.
type LoadStateCommand struct {
	guard guard.ConstructorGuard
}

func NewLoadStateCommand() LoadStateCommand {
	return LoadStateCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c LoadStateCommand) Validate() error {
	return c.guard.Validate(ErrLoadStateCommandIsNotConstructed)
}
