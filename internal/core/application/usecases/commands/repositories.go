// Package commands contains business operations that modify system state.
// Every handler runs its changes inside one unit of work, so a command either
// applies completely or leaves the state exactly as it was.
package commands

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	ChefRepoFactory interface {
		ChefRepository() ports.ChefRepository
	}

	FeedbackRepoFactory interface {
		FeedbackRepository() ports.FeedbackRepository
	}

	// OrderUoW covers kitchen transitions, which touch orders only.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW covers order placement: the new order and the
	// customer's monthly order count change together.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// DeliveryUoW covers assignment and completion, where the order, the
	// resource pool and the feedback log change in one step.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, number)
	//   drivers, err := uow.DriverRepository().GetAll(ctx)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		VehicleRepoFactory
		FeedbackRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// RegistryUoW covers administration of customers, drivers, vehicles
	// and chefs.
	RegistryUoW interface {
		TxManager
		CustomerRepoFactory
		DriverRepoFactory
		VehicleRepoFactory
		ChefRepoFactory
	}

	RegistryUoWFactory interface {
		Create() RegistryUoW
	}
)

// ReadinessScheduler arranges for a preparing order to become ready later.
// Schedule must return immediately.
type ReadinessScheduler interface {
	Schedule(number kernel.OrderNumber)
}

// StateRestorer replaces the runtime state with a loaded snapshot.
type StateRestorer interface {
	Restore(ctx context.Context, snapshot ports.Snapshot) error
}
