package postgres

import (
	"time"

	"catering/internal/core/domain/model/chef"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/feedback"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/vehicle"

	"github.com/lib/pq"
)

// Collections are append-only, so the position of a row in its snapshot
// slice is stable and stored as Ordinal to restore insertion order.

type CustomerDTO struct {
	ID              string `gorm:"primaryKey"`
	OrdersThisMonth int
	Ordinal         int
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// OrderDTO keys orders by the numeric part of the order number; orders have
// no ordinal because the number already is one.
type OrderDTO struct {
	Number        int `gorm:"primaryKey;autoIncrement:false"`
	CustomerID    string
	Items         string
	GrossBill     float64 `gorm:"type:numeric(12,2)"`
	Discount      float64 `gorm:"type:numeric(12,2)"`
	FinalBill     float64 `gorm:"type:numeric(12,2)"`
	Status        string  `gorm:"index"`
	Category      string
	Chefs         pq.StringArray `gorm:"type:text[]"`
	EtaMinutes    int
	DriverID      string
	VehicleID     string
	QueuePosition int
}

func (OrderDTO) TableName() string {
	return "orders"
}

type DriverDTO struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	License   string
	Available bool
	Ordinal   int
}

func (DriverDTO) TableName() string {
	return "drivers"
}

type VehicleDTO struct {
	ID        string `gorm:"primaryKey"`
	Type      string
	Available bool
	Ordinal   int
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

type ChefDTO struct {
	Key       string `gorm:"primaryKey"`
	Name      string
	Available bool
	Ordinal   int
}

func (ChefDTO) TableName() string {
	return "chefs"
}

type FeedbackDTO struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	OrderNumber int
	Rating      int
	Comment     string
	CreatedAt   time.Time
	Ordinal     int
}

func (FeedbackDTO) TableName() string {
	return "feedbacks"
}

func customerFromDomain(c *customer.Customer, ordinal int) CustomerDTO {
	return CustomerDTO{ID: c.ID(), OrdersThisMonth: c.OrdersThisMonth(), Ordinal: ordinal}
}

func customerToDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreRegistered(dto.ID, dto.OrdersThisMonth)
}

func orderFromDomain(o *order.Order, _ int) OrderDTO {
	return OrderDTO{
		Number:        o.Number().Seq(),
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
	}
}

// orderToDomain ignores the stored final bill; RestoreOrder derives it.
func orderToDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.NewOrderNumber(dto.Number)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	category, err := order.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreParams{
		Number:        number,
		CustomerID:    dto.CustomerID,
		Items:         dto.Items,
		GrossBill:     dto.GrossBill,
		Discount:      dto.Discount,
		Status:        status,
		Category:      category,
		Chefs:         dto.Chefs,
		EtaMinutes:    dto.EtaMinutes,
		DriverID:      dto.DriverID,
		VehicleID:     dto.VehicleID,
		QueuePosition: dto.QueuePosition,
	})
}

func driverFromDomain(d *driver.Driver, ordinal int) DriverDTO {
	return DriverDTO{ID: d.ID(), Name: d.Name(), License: d.License(), Available: d.IsAvailable(), Ordinal: ordinal}
}

func driverToDomain(dto DriverDTO) (*driver.Driver, error) {
	return driver.RestoreDriver(dto.ID, dto.Name, dto.License, dto.Available)
}

func vehicleFromDomain(v *vehicle.Vehicle, ordinal int) VehicleDTO {
	return VehicleDTO{ID: v.ID(), Type: v.Type(), Available: v.IsAvailable(), Ordinal: ordinal}
}

func vehicleToDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	return vehicle.RestoreVehicle(dto.ID, dto.Type, dto.Available)
}

func chefFromDomain(c *chef.Chef, ordinal int) ChefDTO {
	return ChefDTO{Key: c.Key(), Name: c.Name(), Available: c.IsAvailable(), Ordinal: ordinal}
}

func chefToDomain(dto ChefDTO) (*chef.Chef, error) {
	return chef.RestoreChef(dto.Name, dto.Available)
}

func feedbackFromDomain(f *feedback.Feedback, ordinal int) FeedbackDTO {
	return FeedbackDTO{
		ID:          f.ID().String(),
		OrderNumber: f.OrderNumber().Seq(),
		Rating:      f.Rating(),
		Comment:     f.Comment(),
		CreatedAt:   f.CreatedAt(),
		Ordinal:     ordinal,
	}
}

func feedbackToDomain(dto FeedbackDTO) (*feedback.Feedback, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	number, err := kernel.NewOrderNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}
	return feedback.NewFeedback(id, number, dto.Rating, dto.Comment, dto.CreatedAt)
}
