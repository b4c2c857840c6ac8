package commands

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrSubmitFeedbackCommandIsNotConstructed = errors.New(
	"SubmitFeedbackCommand must be created via NewSubmitFeedbackCommand constructor",
)

// SubmitFeedbackCommand is the customer rating an order. Submitting feedback
// for an order that is still out for delivery also confirms its delivery.
type SubmitFeedbackCommand struct {
	orderNumber kernel.OrderNumber
	rating      int
	comment     string

	guard guard.ConstructorGuard
}

// NewSubmitFeedbackCommand accepts ratings from MinRating to MaxRating.
func NewSubmitFeedbackCommand(orderNumber kernel.OrderNumber, rating int, comment string) (SubmitFeedbackCommand, error) {
	if err := orderNumber.Validate(); err != nil {
		return SubmitFeedbackCommand{}, err
	}
	if rating < MinRating || rating > MaxRating {
		return SubmitFeedbackCommand{}, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	return SubmitFeedbackCommand{
		orderNumber: orderNumber,
		rating:      rating,
		comment:     strings.TrimSpace(comment),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrSubmitFeedbackCommandIsNotConstructed)
}

func (c SubmitFeedbackCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

func (c SubmitFeedbackCommand) Rating() int {
	return c.rating
}

func (c SubmitFeedbackCommand) Comment() string {
	return c.comment
}
