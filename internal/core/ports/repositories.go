package ports

import (
	"context"

	"catering/internal/core/domain/model/chef"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/feedback"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/vehicle"
)

// OrderRepository stores orders in placement order.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	GetAll(ctx context.Context) ([]*order.Order, error)

	// NextNumber reserves the next value of the order counter. The counter
	// never resets and only advances when the unit of work commits.
	NextNumber(ctx context.Context) (kernel.OrderNumber, error)
}

// CustomerRepository stores registered customers only.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error

	Update(ctx context.Context, aggregate *customer.Customer) error

	Get(ctx context.Context, id string) (*customer.Customer, error)

	GetAll(ctx context.Context) ([]*customer.Customer, error)
}

type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error

	Update(ctx context.Context, aggregate *driver.Driver) error

	Get(ctx context.Context, id string) (*driver.Driver, error)

	// GetAll returns drivers in registration order.
	GetAll(ctx context.Context) ([]*driver.Driver, error)
}

type VehicleRepository interface {
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	Get(ctx context.Context, id string) (*vehicle.Vehicle, error)

	// GetAll returns vehicles in registration order.
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)
}

// ChefRepository looks chefs up by name, ignoring case.
type ChefRepository interface {
	Add(ctx context.Context, aggregate *chef.Chef) error

	Update(ctx context.Context, aggregate *chef.Chef) error

	Get(ctx context.Context, name string) (*chef.Chef, error)

	GetAll(ctx context.Context) ([]*chef.Chef, error)
}

// FeedbackRepository is append-only.
type FeedbackRepository interface {
	Add(ctx context.Context, aggregate *feedback.Feedback) error

	GetAll(ctx context.Context) ([]*feedback.Feedback, error)
}
