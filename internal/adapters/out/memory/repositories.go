package memory

import (
	"context"

	"catering/internal/core/domain/model/chef"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/feedback"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/vehicle"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

var (
	_ ports.OrderRepository    = &OrderRepository{}
	_ ports.CustomerRepository = &CustomerRepository{}
	_ ports.DriverRepository   = &DriverRepository{}
	_ ports.VehicleRepository  = &VehicleRepository{}
	_ ports.ChefRepository     = &ChefRepository{}
	_ ports.FeedbackRepository = &FeedbackRepository{}
)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := r.check(ctx, aggregate); err != nil {
		return err
	}
	key := aggregate.Number().String()
	if !r.uow.orders.add(key, aggregate) {
		return errs.NewObjectAlreadyExistsError("order", key)
	}
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := r.check(ctx, aggregate); err != nil {
		return err
	}
	key := aggregate.Number().String()
	if !r.uow.orders.update(key, aggregate) {
		return errs.NewObjectNotFoundError("order", key)
	}
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := active(ctx, r.uow); err != nil {
		return nil, err
	}
	o, ok := r.uow.orders.get(number.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", number.String())
	}
	return o, nil
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	if err := active(ctx, r.uow); err != nil {
		return nil, err
	}
	return r.uow.orders.all(), nil
}

func (r *OrderRepository) NextNumber(ctx context.Context) (kernel.OrderNumber, error) {
	if err := active(ctx, r.uow); err != nil {
		return kernel.OrderNumber{}, err
	}
	return kernel.NewOrderNumber(r.uow.nextOrderSeq())
}

func (r *OrderRepository) check(ctx context.Context, aggregate *order.Order) error {
	if err := active(ctx, r.uow); err != nil {
		return err
	}
	return aggregate.Validate()
}

type CustomerRepository struct {
	uow *UnitOfWork
}

func (r *CustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := r.check(ctx, aggregate); err != nil {
		return err
	}
	if !r.uow.customers.add(aggregate.ID(), aggregate) {
		return errs.NewObjectAlreadyExistsError("customer", aggregate.ID())
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := r.check(ctx, aggregate); err != nil {
		return err
	}
	if !r.uow.customers.update(aggregate.ID(), aggregate) {
		return errs.NewObjectNotFoundError("customer", aggregate.ID())
	}
	return nil
}

func (r *CustomerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	if err := active(ctx, r.uow); err != nil {
		return nil, err
	}
	c, ok := r.uow.customers.get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id)
	}
	return c, nil
}

func (r *CustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	if err := active(ctx, r.uow); err != nil {
		return nil, err
	}
	return r.uow.customers.all(), nil
}

// check keeps guests out of the store; they live only on their orders.
func (r *CustomerRepository) check(ctx context.Context, aggregate *customer.Customer) error {
	if err := active(ctx, r.uow); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.IsGuest() {
		return errs.NewValueIsInvalidError("guest customers are not stored")
	}
	return nil
}

type DriverRepository struct {
	uow *UnitOfWork
}

func (r *DriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := r.check(ctx, aggregate); err != nil {
		return err
	}
	if !r.uow.drivers.add(aggregate.ID(), aggregate) {
		return errs.NewObjectAlreadyExistsError("driver", aggregate.ID())
	}
	return nil
}

func (r *DriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := r.check(ctx, aggregate); err != nil {
		return err
	}
	if !r.uow.drivers.update(aggregate.ID(), aggregate) {
		return errs.NewObjectNotFoundError("driver", aggregate.ID())
	}
	return nil
}

func (r *DriverRepository) Get(ctx context.Context, id string) (*driver.Driver, error) {
	if err := active(ctx, r.uow); err != nil {
		return nil, err
	}
	d, ok := r.uow.drivers.get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("driver", id)
	}
	return d, nil
}

func (r *DriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	if err := active(ctx, r.uow); err != nil {
		return nil, err
	}
	return r.uow.drivers.all(), nil
}

func (r *DriverRepository) check(ctx context.Context, aggregate *driver.Driver) error {
	if err := active(ctx, r.uow); err != nil {
		return err
	}
	return aggregate.Validate()
}

type VehicleRepository struct {
	uow *UnitOfWork
}

func (r *VehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := r.check(ctx, aggregate); err != nil {
		return err
	}
	if !r.uow.vehicles.add(aggregate.ID(), aggregate) {
		return errs.NewObjectAlreadyExistsError("vehicle", aggregate.ID())
	}
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := r.check(ctx, aggregate); err != nil {
		return err
	}
	if !r.uow.vehicles.update(aggregate.ID(), aggregate) {
		return errs.NewObjectNotFoundError("vehicle", aggregate.ID())
	}
	return nil
}

func (r *VehicleRepository) Get(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	if err := active(ctx, r.uow); err != nil {
		return nil, err
	}
	v, ok := r.uow.vehicles.get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("vehicle", id)
	}
	return v, nil
}

func (r *VehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	if err := active(ctx, r.uow); err != nil {
		return nil, err
	}
	return r.uow.vehicles.all(), nil
}

func (r *VehicleRepository) check(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := active(ctx, r.uow); err != nil {
		return err
	}
	return aggregate.Validate()
}

type ChefRepository struct {
	uow *UnitOfWork
}

func (r *ChefRepository) Add(ctx context.Context, aggregate *chef.Chef) error {
	if err := r.check(ctx, aggregate); err != nil {
		return err
	}
	if !r.uow.chefs.add(aggregate.Key(), aggregate) {
		return errs.NewObjectAlreadyExistsError("chef", aggregate.Name())
	}
	return nil
}

func (r *ChefRepository) Update(ctx context.Context, aggregate *chef.Chef) error {
	if err := r.check(ctx, aggregate); err != nil {
		return err
	}
	if !r.uow.chefs.update(aggregate.Key(), aggregate) {
		return errs.NewObjectNotFoundError("chef", aggregate.Name())
	}
	return nil
}

func (r *ChefRepository) Get(ctx context.Context, name string) (*chef.Chef, error) {
	if err := active(ctx, r.uow); err != nil {
		return nil, err
	}
	c, ok := r.uow.chefs.get(chef.Key(name))
	if !ok {
		return nil, errs.NewObjectNotFoundError("chef", name)
	}
	return c, nil
}

func (r *ChefRepository) GetAll(ctx context.Context) ([]*chef.Chef, error) {
	if err := active(ctx, r.uow); err != nil {
		return nil, err
	}
	return r.uow.chefs.all(), nil
}

func (r *ChefRepository) check(ctx context.Context, aggregate *chef.Chef) error {
	if err := active(ctx, r.uow); err != nil {
		return err
	}
	return aggregate.Validate()
}

type FeedbackRepository struct {
	uow *UnitOfWork
}

func (r *FeedbackRepository) Add(ctx context.Context, aggregate *feedback.Feedback) error {
	if err := active(ctx, r.uow); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	key := aggregate.ID().String()
	if !r.uow.feedbacks.add(key, aggregate) {
		return errs.NewObjectAlreadyExistsError("feedback", key)
	}
	return nil
}

func (r *FeedbackRepository) GetAll(ctx context.Context) ([]*feedback.Feedback, error) {
	if err := active(ctx, r.uow); err != nil {
		return nil, err
	}
	return r.uow.feedbacks.all(), nil
}

func active(ctx context.Context, uow *UnitOfWork) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !uow.active {
		return ErrNoActiveUnitOfWork
	}
	return nil
}
