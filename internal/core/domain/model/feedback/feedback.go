// Package feedback provides the append-only Feedback entity recorded when a
// customer rates a delivered order.
package feedback

import (
	"errors"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrFeedbackIsNotConstructed = errors.New("Feedback must be created via NewFeedback constructor")
	ErrCreatedAtIsRequired      = errs.NewValueIsRequiredError("created at")
)

// Feedback holds a rating and a free-text comment for one order. The rating
// range is enforced where ratings enter the system, not here, so historical
// entries with unusual ratings can still be loaded.
type Feedback struct {
	id          kernel.UUID
	orderNumber kernel.OrderNumber
	rating      int
	comment     string
	createdAt   time.Time

	guard guard.ConstructorGuard
}

func NewFeedback(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	rating int,
	comment string,
	createdAt time.Time,
) (*Feedback, error) {
	if err := errors.Join(id.Validate(), orderNumber.Validate()); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, ErrCreatedAtIsRequired
	}

	return &Feedback{
		id:          id,
		orderNumber: orderNumber,
		rating:      rating,
		comment:     strings.TrimSpace(comment),
		createdAt:   createdAt.UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (f *Feedback) Validate() error {
	if f == nil {
		return ErrFeedbackIsNotConstructed
	}
	return f.guard.Validate(ErrFeedbackIsNotConstructed)
}

func (f *Feedback) ID() kernel.UUID {
	return f.id
}

func (f *Feedback) OrderNumber() kernel.OrderNumber {
	return f.orderNumber
}

func (f *Feedback) Rating() int {
	return f.rating
}

func (f *Feedback) Comment() string {
	return f.comment
}

func (f *Feedback) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Feedback) Clone() *Feedback {
	if f == nil {
		return nil
	}
	cp := *f
	return &cp
}
