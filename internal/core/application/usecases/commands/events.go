package commands

import (
	"context"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
)

// changedEvent describes o as it will look once the unit of work commits.
// It reads the orders through the same unit of work to compute the order
// currently being served.
func changedEvent(ctx context.Context, repo ports.OrderRepository, o *order.Order) (ports.OrderChangedEvent, error) {
	orders, err := repo.GetAll(ctx)
	if err != nil {
		return ports.OrderChangedEvent{}, err
	}

	return ports.OrderChangedEvent{
		OrderNumber:    o.Number().String(),
		CustomerID:     o.CustomerID(),
		Status:         o.Status().String(),
		QueuePosition:  o.QueuePosition(),
		DriverID:       o.DriverID(),
		VehicleID:      o.VehicleID(),
		CurrentServing: services.NewOrderQueue().CurrentServing(orders),
		OccurredAt:     time.Now().UTC(),
	}, nil
}

func publish(ctx context.Context, publisher ports.OrderEventPublisher, events ...ports.OrderChangedEvent) {
	if publisher == nil {
		return
	}
	for _, event := range events {
		publisher.Publish(ctx, event)
	}
}
