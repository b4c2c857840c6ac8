package ports

import (
	"context"
	"time"
)

// OrderChangedEvent announces a committed order transition.
type OrderChangedEvent struct {
	OrderNumber    string    `json:"orderNumber"`
	CustomerID     string    `json:"customerId"`
	Status         string    `json:"status"`
	QueuePosition  int       `json:"queuePosition"`
	DriverID       string    `json:"driverId,omitempty"`
	VehicleID      string    `json:"vehicleId,omitempty"`
	CurrentServing int       `json:"currentServing"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// OrderEventPublisher delivers events on a best-effort basis. Publishing
// happens after commit, so implementations log failures instead of
// returning them.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderChangedEvent)
}
