package commands

import (
	"context"

	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
)

// PlaceOrderResult is what the customer is told after placing an order.
type PlaceOrderResult struct {
	OrderNumber   kernel.OrderNumber
	CustomerID    string
	Items         string
	GrossBill     float64
	Discount      float64
	FinalBill     float64
	QueuePosition int

	// SuggestedCategory is the category the head chef is offered when
	// preparing the order.
	SuggestedCategory order.Category
}

// PlaceOrderCommandHandler prices the selection, applies the customer's
// discount and puts a new order at the back of the kitchen queue.
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	catalog    *menu.Catalog
	policies   customer.Policies
	queue      services.OrderQueue
	publisher  ports.OrderEventPublisher
}

func NewPlaceOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	catalog *menu.Catalog,
	policies customer.Policies,
	publisher ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		policies:   policies,
		queue:      services.NewOrderQueue(),
		publisher:  publisher,
	}
}

// Handle places the order. A registered customer must exist and has the
// monthly order count incremented once, in the same unit of work as the new
// order. Guests get a fresh id and no discount.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	quote, err := h.catalog.Quote(cmd.Selections())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	customerRepo := uow.CustomerRepository()

	buyer := customer.NewGuest()
	if !cmd.IsGuest() {
		buyer, err = customerRepo.Get(ctx, cmd.CustomerID())
		if err != nil {
			return PlaceOrderResult{}, err
		}
	}

	discount := h.policies.CalculateDiscount(buyer, quote.Gross)

	orders, err := orderRepo.GetAll(ctx)
	if err != nil {
		return PlaceOrderResult{}, err
	}
	position := h.queue.NextPosition(orders)

	number, err := orderRepo.NextNumber(ctx)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	placed, err := order.NewOrder(number, buyer.ID(), quote.Description(), quote.Gross, discount, position)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return PlaceOrderResult{}, err
	}

	if !buyer.IsGuest() {
		buyer.RecordOrder()
		if err = customerRepo.Update(ctx, buyer); err != nil {
			return PlaceOrderResult{}, err
		}
	}

	event, err := changedEvent(ctx, orderRepo, placed)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	publish(ctx, h.publisher, event)

	return PlaceOrderResult{
		OrderNumber:       placed.Number(),
		CustomerID:        placed.CustomerID(),
		Items:             placed.Items(),
		GrossBill:         placed.GrossBill(),
		Discount:          placed.Discount(),
		FinalBill:         placed.FinalBill(),
		QueuePosition:     placed.QueuePosition(),
		SuggestedCategory: order.SuggestCategory(placed.FinalBill()),
	}, nil
}
