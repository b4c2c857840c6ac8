// Package filestore keeps the catering state in a single versioned JSON
// document. Saves write a temporary file next to the target and rename it
// into place, so a crash never leaves a half-written document behind.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

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

// DocumentVersion is the format written by SaveAll. LoadAll refuses any
// other version.
const DocumentVersion = 1

var _ ports.EntityStore = (*Store)(nil)

type Store struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

type document struct {
	Version   int              `json:"version"`
	SavedAt   time.Time        `json:"savedAt"`
	Customers []customerRecord `json:"customers"`
	Orders    []orderRecord    `json:"orders"`
	Drivers   []driverRecord   `json:"drivers"`
	Vehicles  []vehicleRecord  `json:"vehicles"`
	Chefs     []chefRecord     `json:"chefs"`
	Feedbacks []feedbackRecord `json:"feedbacks"`
}

type customerRecord struct {
	ID              string `json:"id"`
	OrdersThisMonth int    `json:"ordersThisMonth"`
}

type orderRecord struct {
	OrderNumber   string   `json:"orderNumber"`
	CustomerID    string   `json:"customerId"`
	Items         string   `json:"items"`
	GrossBill     float64  `json:"grossBill"`
	Discount      float64  `json:"discount"`
	FinalBill     float64  `json:"finalBill"`
	Status        string   `json:"status"`
	Category      string   `json:"category,omitempty"`
	Chefs         []string `json:"chefs,omitempty"`
	EtaMinutes    int      `json:"etaMinutes,omitempty"`
	DriverID      string   `json:"driverId,omitempty"`
	VehicleID     string   `json:"vehicleId,omitempty"`
	QueuePosition int      `json:"queuePosition"`
}

type driverRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	License   string `json:"license"`
	Available bool   `json:"available"`
}

type vehicleRecord struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Available bool   `json:"available"`
}

type chefRecord struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

type feedbackRecord struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LoadAll returns an empty snapshot when the file does not exist yet.
func (s *Store) LoadAll(ctx context.Context) (ports.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return ports.Snapshot{}, err
	}

	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	s.mu.Unlock()
	if errors.Is(err, fs.ErrNotExist) {
		return ports.Snapshot{}, nil
	}
	if err != nil {
		return ports.Snapshot{}, fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc document
	if err = json.Unmarshal(data, &doc); err != nil {
		return ports.Snapshot{}, errs.NewValueIsInvalidErrorWithCause("state document", err)
	}
	if doc.Version != DocumentVersion {
		return ports.Snapshot{}, errs.NewVersionIsInvalidErrorWithCause(
			"state document",
			fmt.Errorf("got version %d, want %d", doc.Version, DocumentVersion),
		)
	}

	return doc.snapshot()
}

// SaveAll replaces the document with the snapshot. Guest customers are
// skipped.
func (s *Store) SaveAll(ctx context.Context, snapshot ports.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(newDocument(snapshot, s.now()), "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeAtomic(s.path, data)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func newDocument(snapshot ports.Snapshot, savedAt time.Time) document {
	doc := document{
		Version:   DocumentVersion,
		SavedAt:   savedAt.UTC(),
		Customers: make([]customerRecord, 0, len(snapshot.Customers)),
		Orders:    make([]orderRecord, 0, len(snapshot.Orders)),
		Drivers:   make([]driverRecord, 0, len(snapshot.Drivers)),
		Vehicles:  make([]vehicleRecord, 0, len(snapshot.Vehicles)),
		Chefs:     make([]chefRecord, 0, len(snapshot.Chefs)),
		Feedbacks: make([]feedbackRecord, 0, len(snapshot.Feedbacks)),
	}

	for _, c := range snapshot.Customers {
		if c.IsGuest() {
			continue
		}
		doc.Customers = append(doc.Customers, customerRecord{ID: c.ID(), OrdersThisMonth: c.OrdersThisMonth()})
	}
	for _, o := range snapshot.Orders {
		doc.Orders = append(doc.Orders, orderRecord{
			OrderNumber:   o.Number().String(),
			CustomerID:    o.CustomerID(),
			Items:         o.Items(),
			GrossBill:     o.GrossBill(),
			Discount:      o.Discount(),
			FinalBill:     o.FinalBill(),
			Status:        o.Status().String(),
			Category:      o.Category().String(),
			Chefs:         o.Chefs(),
			EtaMinutes:    o.EtaMinutes(),
			DriverID:      o.DriverID(),
			VehicleID:     o.VehicleID(),
			QueuePosition: o.QueuePosition(),
		})
	}
	for _, d := range snapshot.Drivers {
		doc.Drivers = append(doc.Drivers, driverRecord{
			ID: d.ID(), Name: d.Name(), License: d.License(), Available: d.IsAvailable(),
		})
	}
	for _, v := range snapshot.Vehicles {
		doc.Vehicles = append(doc.Vehicles, vehicleRecord{ID: v.ID(), Type: v.Type(), Available: v.IsAvailable()})
	}
	for _, c := range snapshot.Chefs {
		doc.Chefs = append(doc.Chefs, chefRecord{Name: c.Name(), Available: c.IsAvailable()})
	}
	for _, f := range snapshot.Feedbacks {
		doc.Feedbacks = append(doc.Feedbacks, feedbackRecord{
			ID:          f.ID().String(),
			OrderNumber: f.OrderNumber().String(),
			Rating:      f.Rating(),
			Comment:     f.Comment(),
			CreatedAt:   f.CreatedAt(),
		})
	}

	return doc
}

func (d document) snapshot() (ports.Snapshot, error) {
	var (
		snapshot ports.Snapshot
		problems []error
	)

	for _, r := range d.Customers {
		c, err := customer.RestoreRegistered(r.ID, r.OrdersThisMonth)
		if err != nil {
			problems = append(problems, fmt.Errorf("customer %s: %w", r.ID, err))
			continue
		}
		snapshot.Customers = append(snapshot.Customers, c)
	}
	for _, r := range d.Orders {
		o, err := r.order()
		if err != nil {
			problems = append(problems, fmt.Errorf("order %s: %w", r.OrderNumber, err))
			continue
		}
		snapshot.Orders = append(snapshot.Orders, o)
	}
	for _, r := range d.Drivers {
		drv, err := driver.RestoreDriver(r.ID, r.Name, r.License, r.Available)
		if err != nil {
			problems = append(problems, fmt.Errorf("driver %s: %w", r.ID, err))
			continue
		}
		snapshot.Drivers = append(snapshot.Drivers, drv)
	}
	for _, r := range d.Vehicles {
		v, err := vehicle.RestoreVehicle(r.ID, r.Type, r.Available)
		if err != nil {
			problems = append(problems, fmt.Errorf("vehicle %s: %w", r.ID, err))
			continue
		}
		snapshot.Vehicles = append(snapshot.Vehicles, v)
	}
	for _, r := range d.Chefs {
		c, err := chef.RestoreChef(r.Name, r.Available)
		if err != nil {
			problems = append(problems, fmt.Errorf("chef %q: %w", r.Name, err))
			continue
		}
		snapshot.Chefs = append(snapshot.Chefs, c)
	}
	for _, r := range d.Feedbacks {
		f, err := r.feedback()
		if err != nil {
			problems = append(problems, fmt.Errorf("feedback %s: %w", r.ID, err))
			continue
		}
		snapshot.Feedbacks = append(snapshot.Feedbacks, f)
	}

	if err := errors.Join(problems...); err != nil {
		return ports.Snapshot{}, err
	}
	return snapshot, nil
}

func (r orderRecord) order() (*order.Order, error) {
	number, err := kernel.ParseOrderNumber(r.OrderNumber)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	category, err := order.ParseCategory(r.Category)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreParams{
		Number:        number,
		CustomerID:    r.CustomerID,
		Items:         r.Items,
		GrossBill:     r.GrossBill,
		Discount:      r.Discount,
		Status:        status,
		Category:      category,
		Chefs:         r.Chefs,
		EtaMinutes:    r.EtaMinutes,
		DriverID:      r.DriverID,
		VehicleID:     r.VehicleID,
		QueuePosition: r.QueuePosition,
	})
}

func (r feedbackRecord) feedback() (*feedback.Feedback, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return nil, err
	}
	number, err := kernel.ParseOrderNumber(r.OrderNumber)
	if err != nil {
		return nil, err
	}
	return feedback.NewFeedback(id, number, r.Rating, r.Comment, r.CreatedAt)
}
