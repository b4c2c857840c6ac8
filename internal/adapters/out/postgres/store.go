package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"catering/internal/core/domain/model/chef"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/feedback"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/vehicle"
	"catering/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const saveBatchSize = 200

var _ ports.EntityStore = (*Store)(nil)

// Store implements ports.EntityStore on top of GORM. SaveAll upserts every
// row of the snapshot inside one transaction; rows are never deleted because
// no collection ever shrinks.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// LoadAll reads every table in one read-only transaction. Rows that no
// longer satisfy the domain rules fail the whole load.
func (s *Store) LoadAll(ctx context.Context) (ports.Snapshot, error) {
	var snapshot ports.Snapshot

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error

		if snapshot.Customers, err = load(tx, "ordinal", customerToDomain); err != nil {
			return fmt.Errorf("customers: %w", err)
		}
		if snapshot.Orders, err = load(tx, "number", orderToDomain); err != nil {
			return fmt.Errorf("orders: %w", err)
		}
		if snapshot.Drivers, err = load(tx, "ordinal", driverToDomain); err != nil {
			return fmt.Errorf("drivers: %w", err)
		}
		if snapshot.Vehicles, err = load(tx, "ordinal", vehicleToDomain); err != nil {
			return fmt.Errorf("vehicles: %w", err)
		}
		if snapshot.Chefs, err = load(tx, "ordinal", chefToDomain); err != nil {
			return fmt.Errorf("chefs: %w", err)
		}
		if snapshot.Feedbacks, err = load(tx, "ordinal", feedbackToDomain); err != nil {
			return fmt.Errorf("feedbacks: %w", err)
		}

		return nil
	}, readOnly())
	if err != nil {
		return ports.Snapshot{}, fmt.Errorf("load all: %w", err)
	}

	return snapshot, nil
}

// SaveAll writes the snapshot. Guest customers are skipped.
func (s *Store) SaveAll(ctx context.Context, snapshot ports.Snapshot) error {
	registered := make([]*customer.Customer, 0, len(snapshot.Customers))
	for _, c := range snapshot.Customers {
		if !c.IsGuest() {
			registered = append(registered, c)
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsert(tx, registered, customerFromDomain); err != nil {
			return fmt.Errorf("customers: %w", err)
		}
		if err := upsert(tx, snapshot.Orders, orderFromDomain); err != nil {
			return fmt.Errorf("orders: %w", err)
		}
		if err := upsert(tx, snapshot.Drivers, driverFromDomain); err != nil {
			return fmt.Errorf("drivers: %w", err)
		}
		if err := upsert(tx, snapshot.Vehicles, vehicleFromDomain); err != nil {
			return fmt.Errorf("vehicles: %w", err)
		}
		if err := upsert(tx, snapshot.Chefs, chefFromDomain); err != nil {
			return fmt.Errorf("chefs: %w", err)
		}
		if err := upsert(tx, snapshot.Feedbacks, feedbackFromDomain); err != nil {
			return fmt.Errorf("feedbacks: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save all: %w", err)
	}

	return nil
}

type aggregate interface {
	*customer.Customer | *order.Order | *driver.Driver | *vehicle.Vehicle | *chef.Chef | *feedback.Feedback
}

func load[D any, A aggregate](tx *gorm.DB, orderBy string, toDomain func(D) (A, error)) ([]A, error) {
	var dtos []D
	if err := tx.Order(orderBy).Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]A, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

func upsert[A aggregate, D any](tx *gorm.DB, items []A, fromDomain func(A, int) D) error {
	if len(items) == 0 {
		return nil
	}

	dtos := make([]D, 0, len(items))
	for i, item := range items {
		dtos = append(dtos, fromDomain(item, i))
	}

	return tx.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(&dtos, saveBatchSize).Error
}

func readOnly() *sql.TxOptions {
	return &sql.TxOptions{ReadOnly: true}
}
