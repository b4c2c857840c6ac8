package commands

import (
	"errors"

	"catering/internal/pkg/guard"
)

var ErrResetMonthlyOrdersCommandIsNotConstructed = errors.New(
	"ResetMonthlyOrdersCommand must be created via NewResetMonthlyOrdersCommand constructor",
)

// ResetMonthlyOrdersCommand starts a new discount month for every
// registered customer.
type ResetMonthlyOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewResetMonthlyOrdersCommand() ResetMonthlyOrdersCommand {
	return ResetMonthlyOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c ResetMonthlyOrdersCommand) Validate() error {
	return c.guard.Validate(ErrResetMonthlyOrdersCommandIsNotConstructed)
}
