package queries

import (
	"context"
	"errors"

	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/pkg/guard"
)

var ErrGetCurrentServingQueryIsNotConstructed = errors.New(
	"GetCurrentServingQuery must be created via NewGetCurrentServingQuery constructor",
)

// GetCurrentServingQuery asks for the "now serving" number shown to
// customers: the count of delivered orders plus one.
type GetCurrentServingQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCurrentServingQuery() GetCurrentServingQuery {
	return GetCurrentServingQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCurrentServingQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentServingQueryIsNotConstructed)
}

type GetCurrentServingQueryHandler struct {
	reader ports.StateReader
	queue  services.OrderQueue
}

func NewGetCurrentServingQueryHandler(reader ports.StateReader) GetCurrentServingQueryHandler {
	return GetCurrentServingQueryHandler{
		reader: reader,
		queue:  services.NewOrderQueue(),
	}
}

func (h GetCurrentServingQueryHandler) Handle(ctx context.Context, query GetCurrentServingQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	snapshot, err := h.reader.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	return h.queue.CurrentServing(snapshot.Orders), nil
}
