package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"catering/internal/core/domain/model/chef"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/feedback"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/vehicle"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"golang.org/x/sync/semaphore"
)

// State is the authoritative in-memory copy of every entity.
//
// Writers go through a UnitOfWork, which holds writeLock from Begin until
// Commit or Rollback, so every mutation path (commands, the preparation
// scheduler, jobs, Restore) is serialized. mu is taken exclusively only
// while a commit is applied, and shared by Snapshot, so readers see either
// all or none of a unit of work.
type State struct {
	writeLock *semaphore.Weighted
	mu        sync.RWMutex

	orders    *table[*order.Order]
	customers *table[*customer.Customer]
	drivers   *table[*driver.Driver]
	vehicles  *table[*vehicle.Vehicle]
	chefs     *table[*chef.Chef]
	feedbacks *table[*feedback.Feedback]

	lastOrderSeq int
}

func NewState() *State {
	return &State{
		writeLock: semaphore.NewWeighted(1),
		orders:    newTable[*order.Order](),
		customers: newTable[*customer.Customer](),
		drivers:   newTable[*driver.Driver](),
		vehicles:  newTable[*vehicle.Vehicle](),
		chefs:     newTable[*chef.Chef](),
		feedbacks: newTable[*feedback.Feedback](),
	}
}

// Snapshot returns deep copies of all collections.
func (s *State) Snapshot(ctx context.Context) (ports.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return ports.Snapshot{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return ports.Snapshot{
		Customers: s.customers.list((*customer.Customer).Clone),
		Orders:    s.orders.list((*order.Order).Clone),
		Drivers:   s.drivers.list((*driver.Driver).Clone),
		Vehicles:  s.vehicles.list((*vehicle.Vehicle).Clone),
		Chefs:     s.chefs.list((*chef.Chef).Clone),
		Feedbacks: s.feedbacks.list((*feedback.Feedback).Clone),
	}, nil
}

// Restore replaces the whole state with a loaded snapshot and resumes the
// order counter after the highest order number. Nothing changes when the
// snapshot holds invalid or duplicate entities.
func (s *State) Restore(ctx context.Context, snapshot ports.Snapshot) error {
	if err := s.writeLock.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.writeLock.Release(1)

	next := NewState()
	var errList []error

	for _, o := range snapshot.Orders {
		errList = append(errList, restoreRow(next.orders, "order", o, func(o *order.Order) string {
			return o.Number().String()
		}))
		if o != nil && o.Number().Seq() > next.lastOrderSeq {
			next.lastOrderSeq = o.Number().Seq()
		}
	}
	for _, c := range snapshot.Customers {
		if c != nil && c.IsGuest() {
			continue
		}
		errList = append(errList, restoreRow(next.customers, "customer", c, (*customer.Customer).ID))
	}
	for _, d := range snapshot.Drivers {
		errList = append(errList, restoreRow(next.drivers, "driver", d, (*driver.Driver).ID))
	}
	for _, v := range snapshot.Vehicles {
		errList = append(errList, restoreRow(next.vehicles, "vehicle", v, (*vehicle.Vehicle).ID))
	}
	for _, c := range snapshot.Chefs {
		errList = append(errList, restoreRow(next.chefs, "chef", c, (*chef.Chef).Key))
	}
	for _, f := range snapshot.Feedbacks {
		errList = append(errList, restoreRow(next.feedbacks, "feedback", f, func(f *feedback.Feedback) string {
			return f.ID().String()
		}))
	}

	if err := errors.Join(errList...); err != nil {
		return fmt.Errorf("restore state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = next.orders
	s.customers = next.customers
	s.drivers = next.drivers
	s.vehicles = next.vehicles
	s.chefs = next.chefs
	s.feedbacks = next.feedbacks
	s.lastOrderSeq = next.lastOrderSeq
	return nil
}

type entity[T any] interface {
	Validate() error
	Clone() T
}

func restoreRow[T entity[T]](t *table[T], name string, row T, key func(T) string) error {
	if err := row.Validate(); err != nil {
		return err
	}
	if !t.insert(key(row), row.Clone()) {
		return errs.NewObjectAlreadyExistsError(name, key(row))
	}
	return nil
}
