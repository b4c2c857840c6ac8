package ports

import (
	"context"

	"catering/internal/core/domain/model/chef"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/feedback"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/vehicle"
)

// Snapshot is a consistent copy of every entity collection, each in
// insertion order.
type Snapshot struct {
	Customers []*customer.Customer
	Orders    []*order.Order
	Drivers   []*driver.Driver
	Vehicles  []*vehicle.Vehicle
	Chefs     []*chef.Chef
	Feedbacks []*feedback.Feedback
}

// StateReader serves read-only queries. A snapshot never contains a
// partially applied unit of work.
type StateReader interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// EntityStore is the durable persistence collaborator. Both calls are
// all-or-nothing.
type EntityStore interface {
	LoadAll(ctx context.Context) (Snapshot, error)

	SaveAll(ctx context.Context, snapshot Snapshot) error
}
