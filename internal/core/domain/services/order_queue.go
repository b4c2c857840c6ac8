package services

import (
	"sort"

	"catering/internal/core/domain/model/order"
)

// OrderQueue keeps the kitchen queue positions of orders.
type OrderQueue struct{}

func NewOrderQueue() OrderQueue {
	return OrderQueue{}
}

// NextPosition returns the position of an order placed now: behind every
// order that is still Placed or Preparing.
func (OrderQueue) NextPosition(orders []*order.Order) int {
	active := 0
	for _, o := range orders {
		if o.Status().IsActive() {
			active++
		}
	}
	return active + 1
}

// Compact moves up every undelivered order queued behind removedPosition,
// the position the delivered order held. The delivered order itself is
// skipped. Compact returns the orders whose position changed.
func (OrderQueue) Compact(orders []*order.Order, delivered *order.Order, removedPosition int) ([]*order.Order, error) {
	moved := make([]*order.Order, 0)
	if removedPosition <= 0 {
		return moved, nil
	}

	for _, o := range orders {
		if o.IsEqual(delivered) || o.Status().IsDelivered() {
			continue
		}
		if o.QueuePosition() > removedPosition {
			if err := o.MoveUpInQueue(); err != nil {
				return nil, err
			}
			moved = append(moved, o)
		}
	}

	return moved, nil
}

// CurrentServing is the number of delivered orders plus one.
func (OrderQueue) CurrentServing(orders []*order.Order) int {
	delivered := 0
	for _, o := range orders {
		if o.Status().IsDelivered() {
			delivered++
		}
	}
	return delivered + 1
}

// Active lists the orders that are not delivered yet, by queue position.
// Orders sharing a position are listed by order number.
func (OrderQueue) Active(orders []*order.Order) []*order.Order {
	active := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if !o.Status().IsDelivered() {
			active = append(active, o)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].QueuePosition() != active[j].QueuePosition() {
			return active[i].QueuePosition() < active[j].QueuePosition()
		}
		return active[i].Number().Seq() < active[j].Number().Seq()
	})

	return active
}
