package customer

import (
	"errors"
	"fmt"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewRegistered or NewGuest constructor")
	ErrIDIsRequired             = errs.NewValueIsRequiredError("customer id")
)

// Customer is either a registered customer or a walk-in guest.
type Customer struct {
	id              string
	kind            Kind
	ordersThisMonth int

	guard guard.ConstructorGuard
}

// NewRegistered creates a registered customer with no orders this month.
// The id must not carry the guest prefix.
func NewRegistered(id string) (*Customer, error) {
	return RestoreRegistered(id, 0)
}

// RestoreRegistered rebuilds a registered customer from a store.
func RestoreRegistered(id string, ordersThisMonth int) (*Customer, error) {
	c := &Customer{
		kind:  Registered,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrdersThisMonth(ordersThisMonth),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// NewGuest creates a guest with a freshly generated id.
func NewGuest() *Customer {
	return &Customer{
		id:    kernel.NewGuestID(),
		kind:  Guest,
		guard: guard.NewConstructorGuard(),
	}
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() string {
	return c.id
}

func (c *Customer) Kind() Kind {
	return c.kind
}

func (c *Customer) IsGuest() bool {
	return c.kind == Guest
}

func (c *Customer) OrdersThisMonth() int {
	return c.ordersThisMonth
}

// RecordOrder counts a successfully placed order. Guests do not accumulate orders.
func (c *Customer) RecordOrder() {
	if c.kind == Registered {
		c.ordersThisMonth++
	}
}

// ResetMonthlyOrders starts a new calendar month.
func (c *Customer) ResetMonthlyOrders() {
	c.ordersThisMonth = 0
}

func (c *Customer) Clone() *Customer {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func (c *Customer) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrIDIsRequired
	}
	if kernel.IsGuestID(id) {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer id",
			fmt.Errorf("%q uses the reserved %s prefix", id, kernel.GuestIDPrefix),
		)
	}
	c.id = id
	return nil
}

func (c *Customer) setOrdersThisMonth(n int) error {
	if n < 0 {
		return errs.NewValueIsInvalidErrorWithCause("orders this month", fmt.Errorf("%d is negative", n))
	}
	c.ordersThisMonth = n
	return nil
}
