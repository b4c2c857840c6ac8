package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups the changes of one command. Changes become visible to
// other units of work and to readers only when Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	CustomerRepository() CustomerRepository

	DriverRepository() DriverRepository

	VehicleRepository() VehicleRepository

	ChefRepository() ChefRepository

	FeedbackRepository() FeedbackRepository
}
