package queries

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

type GetOrderQuery struct {
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderNumber kernel.OrderNumber) (GetOrderQuery, error) {
	if err := orderNumber.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderNumber: orderNumber, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderNumber() kernel.OrderNumber {
	return q.orderNumber
}

type GetOrderQueryHandler struct {
	reader ports.StateReader
}

func NewGetOrderQueryHandler(reader ports.StateReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle returns the order in any status, including delivered ones.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	snapshot, err := h.reader.Snapshot(ctx)
	if err != nil {
		return OrderResponse{}, err
	}

	for _, o := range snapshot.Orders {
		if o.Number().IsEqual(query.OrderNumber()) {
			return newOrderResponse(o), nil
		}
	}

	return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderNumber().String())
}
