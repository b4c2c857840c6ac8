// Package queries contains read operations for retrieving system state.
// Handlers read consistent snapshots through ports.StateReader and return
// plain read models, never the aggregates themselves.
package queries

import (
	"time"

	"catering/internal/core/domain/model/chef"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/feedback"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/vehicle"
)

// OrderResponse is the read model of an order.
type OrderResponse struct {
	OrderNumber   string
	CustomerID    string
	Items         string
	GrossBill     float64
	Discount      float64
	FinalBill     float64
	Status        string
	Category      string
	Chefs         []string
	EtaMinutes    int
	DriverID      string
	VehicleID     string
	QueuePosition int
}

type CustomerResponse struct {
	ID              string
	OrdersThisMonth int
}

type DriverResponse struct {
	ID        string
	Name      string
	Available bool
}

type VehicleResponse struct {
	ID        string
	Type      string
	Available bool
}

type ChefResponse struct {
	Name      string
	Available bool
}

type FeedbackResponse struct {
	ID          string
	OrderNumber string
	Rating      int
	Comment     string
	CreatedAt   time.Time
}

func newOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
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
	}
}

func newCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID(), OrdersThisMonth: c.OrdersThisMonth()}
}

// Driver licenses are credentials and are left out of the read model.
func newDriverResponse(d *driver.Driver) DriverResponse {
	return DriverResponse{ID: d.ID(), Name: d.Name(), Available: d.IsAvailable()}
}

func newVehicleResponse(v *vehicle.Vehicle) VehicleResponse {
	return VehicleResponse{ID: v.ID(), Type: v.Type(), Available: v.IsAvailable()}
}

func newChefResponse(c *chef.Chef) ChefResponse {
	return ChefResponse{Name: c.Name(), Available: c.IsAvailable()}
}

func newFeedbackResponse(f *feedback.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:          f.ID().String(),
		OrderNumber: f.OrderNumber().String(),
		Rating:      f.Rating(),
		Comment:     f.Comment(),
		CreatedAt:   f.CreatedAt(),
	}
}

func mapAll[T, R any](items []T, f func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, f(item))
	}
	return out
}
