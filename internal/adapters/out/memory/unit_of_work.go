package memory

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/chef"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/feedback"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/vehicle"
	"catering/internal/core/ports"
)

var ErrNoActiveUnitOfWork = errors.New("unit of work is not active")

var _ ports.UnitOfWorkFactory = &UnitOfWorkFactory{}

type UnitOfWorkFactory struct {
	state *State
}

func NewUnitOfWorkFactory(state *State) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{state: state}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return NewUnitOfWork(f.state)
}

var _ ports.UnitOfWork = &UnitOfWork{}

// UnitOfWork stages changes against State. Begin takes the state's write
// lock, so at most one unit of work is active at a time; Commit applies the
// staged rows in one step and Rollback drops them.
type UnitOfWork struct {
	state  *State
	active bool

	orders    *changeSet[*order.Order]
	customers *changeSet[*customer.Customer]
	drivers   *changeSet[*driver.Driver]
	vehicles  *changeSet[*vehicle.Vehicle]
	chefs     *changeSet[*chef.Chef]
	feedbacks *changeSet[*feedback.Feedback]

	// reservedOrderSeq is the last order number handed out by this unit of
	// work, 0 when none was.
	reservedOrderSeq int

	orderRepository    *OrderRepository
	customerRepository *CustomerRepository
	driverRepository   *DriverRepository
	vehicleRepository  *VehicleRepository
	chefRepository     *ChefRepository
	feedbackRepository *FeedbackRepository
}

func NewUnitOfWork(state *State) *UnitOfWork {
	uow := &UnitOfWork{state: state}
	uow.orderRepository = &OrderRepository{uow: uow}
	uow.customerRepository = &CustomerRepository{uow: uow}
	uow.driverRepository = &DriverRepository{uow: uow}
	uow.vehicleRepository = &VehicleRepository{uow: uow}
	uow.chefRepository = &ChefRepository{uow: uow}
	uow.feedbackRepository = &FeedbackRepository{uow: uow}
	return uow
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return u.orderRepository
}

func (u *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return u.customerRepository
}

func (u *UnitOfWork) DriverRepository() ports.DriverRepository {
	return u.driverRepository
}

func (u *UnitOfWork) VehicleRepository() ports.VehicleRepository {
	return u.vehicleRepository
}

func (u *UnitOfWork) ChefRepository() ports.ChefRepository {
	return u.chefRepository
}

func (u *UnitOfWork) FeedbackRepository() ports.FeedbackRepository {
	return u.feedbackRepository
}

// Begin waits for the write lock. It is a no-op when already active.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return nil
	}
	if err := u.state.writeLock.Acquire(ctx, 1); err != nil {
		return err
	}

	u.active = true
	u.orders = newChangeSet(u.state.orders, (*order.Order).Clone)
	u.customers = newChangeSet(u.state.customers, (*customer.Customer).Clone)
	u.drivers = newChangeSet(u.state.drivers, (*driver.Driver).Clone)
	u.vehicles = newChangeSet(u.state.vehicles, (*vehicle.Vehicle).Clone)
	u.chefs = newChangeSet(u.state.chefs, (*chef.Chef).Clone)
	u.feedbacks = newChangeSet(u.state.feedbacks, (*feedback.Feedback).Clone)
	u.reservedOrderSeq = 0
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveUnitOfWork
	}

	u.state.mu.Lock()
	u.orders.apply()
	u.customers.apply()
	u.drivers.apply()
	u.vehicles.apply()
	u.chefs.apply()
	u.feedbacks.apply()
	if u.reservedOrderSeq > u.state.lastOrderSeq {
		u.state.lastOrderSeq = u.reservedOrderSeq
	}
	u.state.mu.Unlock()

	u.finish()
	return nil
}

// Rollback discards staged changes. After a successful Commit it returns
// ErrNoActiveUnitOfWork, which deferred calls ignore.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoActiveUnitOfWork
	}
	u.finish()
	return nil
}

func (u *UnitOfWork) finish() {
	u.active = false
	u.orders = nil
	u.customers = nil
	u.drivers = nil
	u.vehicles = nil
	u.chefs = nil
	u.feedbacks = nil
	u.reservedOrderSeq = 0
	u.state.writeLock.Release(1)
}

func (u *UnitOfWork) nextOrderSeq() int {
	if u.reservedOrderSeq == 0 {
		u.reservedOrderSeq = u.state.lastOrderSeq
	}
	u.reservedOrderSeq++
	return u.reservedOrderSeq
}
