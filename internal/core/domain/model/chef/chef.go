// Package chef provides the Chef entity. Chefs are identified by name,
// compared case-insensitively. Availability is recorded and persisted but no
// operation checks or flips it, so one chef may work on several orders.
package chef

import (
	"errors"
	"strings"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrChefIsNotConstructed = errors.New("Chef must be created via NewChef constructor")
	ErrNameIsRequired       = errs.NewValueIsRequiredError("chef name")
)

type Chef struct {
	name      string
	available bool

	guard guard.ConstructorGuard
}

func NewChef(name string) (*Chef, error) {
	return RestoreChef(name, true)
}

func RestoreChef(name string, available bool) (*Chef, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Chef{
		name:      name,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Key returns the identity used for uniqueness checks.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (c *Chef) Validate() error {
	if c == nil {
		return ErrChefIsNotConstructed
	}
	return c.guard.Validate(ErrChefIsNotConstructed)
}

func (c *Chef) Name() string {
	return c.name
}

func (c *Chef) Key() string {
	return Key(c.name)
}

func (c *Chef) IsAvailable() bool {
	return c.available
}

// HasName compares names ignoring case and surrounding whitespace.
func (c *Chef) HasName(name string) bool {
	return strings.EqualFold(c.name, strings.TrimSpace(name))
}

func (c *Chef) Clone() *Chef {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
