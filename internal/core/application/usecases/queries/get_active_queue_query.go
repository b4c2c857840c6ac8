package queries

import (
	"errors"

	"catering/internal/pkg/guard"
)

var ErrGetActiveQueueQueryIsNotConstructed = errors.New(
	"GetActiveQueueQuery must be created via NewGetActiveQueueQuery constructor",
)

// GetActiveQueueQuery lists every order that is not delivered yet, front of
// the queue first.
//
// Example:
//
//	handler := NewGetActiveQueueQueryHandler(state)
//	orders, err := handler.Handle(ctx, NewGetActiveQueueQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to read queue: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("#%d  %s  %s\n", o.QueuePosition, o.OrderNumber, o.Status)
//	}
type GetActiveQueueQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveQueueQuery() GetActiveQueueQuery {
	return GetActiveQueueQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveQueueQueryIsNotConstructed)
}
