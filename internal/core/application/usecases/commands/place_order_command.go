package commands

import (
	"errors"
	"slices"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrGuestIDIsNotAccepted = errs.NewValueIsInvalidError("customer id must not be a guest id")
)

// PlaceOrderCommand represents a customer's request for food. An empty
// customer id places the order as a guest.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("C1", []menu.Selection{
//	    {Item: "Chicken Biryani", Quantity: 2},
//	    {Item: "Green Salad", Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	fmt.Printf("order %s is number %d in the queue", result.OrderNumber, result.QueuePosition)
type PlaceOrderCommand struct {
	customerID string
	selections []menu.Selection

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the request before any state is touched.
// At least one selection is required.
func NewPlaceOrderCommand(customerID string, selections []menu.Selection) (PlaceOrderCommand, error) {
	customerID = strings.TrimSpace(customerID)

	if len(selections) == 0 {
		return PlaceOrderCommand{}, menu.ErrSelectionIsRequired
	}
	if kernel.IsGuestID(customerID) {
		return PlaceOrderCommand{}, ErrGuestIDIsNotAccepted
	}

	return PlaceOrderCommand{
		customerID: customerID,
		selections: slices.Clone(selections),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the registered customer id, empty for a guest.
func (c PlaceOrderCommand) CustomerID() string {
	return c.customerID
}

func (c PlaceOrderCommand) IsGuest() bool {
	return c.customerID == ""
}

func (c PlaceOrderCommand) Selections() []menu.Selection {
	return slices.Clone(c.selections)
}
