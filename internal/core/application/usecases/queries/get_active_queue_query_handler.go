package queries

import (
	"context"

	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
)

type GetActiveQueueQueryHandler struct {
	reader ports.StateReader
	queue  services.OrderQueue
}

func NewGetActiveQueueQueryHandler(reader ports.StateReader) GetActiveQueueQueryHandler {
	return GetActiveQueueQueryHandler{
		reader: reader,
		queue:  services.NewOrderQueue(),
	}
}

// Handle returns the undelivered orders sorted by queue position. Orders that
// share a position are listed by order number.
func (h GetActiveQueueQueryHandler) Handle(ctx context.Context, query GetActiveQueueQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.reader.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return mapAll(h.queue.Active(snapshot.Orders), newOrderResponse), nil
}
