package commands

import (
	"context"
	"time"

	"catering/internal/core/domain/model/feedback"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

type SubmitFeedbackCommandHandler struct {
	uowFactory DeliveryUoWFactory
	dispatcher services.DeliveryDispatcher
	publisher  ports.OrderEventPublisher
}

func NewSubmitFeedbackCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.OrderEventPublisher,
) SubmitFeedbackCommandHandler {
	return SubmitFeedbackCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDeliveryDispatcher(),
		publisher:  publisher,
	}
}

// Handle records the feedback. An order out for delivery is delivered in the
// same unit of work; an order already delivered only gets the feedback
// appended. Orders that have not left the kitchen yet are rejected with
// StateIsInvalid.
func (h SubmitFeedbackCommandHandler) Handle(ctx context.Context, cmd SubmitFeedbackCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderNumber())
	if err != nil {
		return kernel.UUID{}, err
	}

	var events []ports.OrderChangedEvent

	switch o.Status() {
	case order.Delivered:
		// already delivered, feedback only
	case order.OutForDelivery:
		drv, driverErr := assignedDriver(ctx, uow.DriverRepository(), o)
		if driverErr != nil {
			return kernel.UUID{}, driverErr
		}
		if events, err = completeDelivery(ctx, uow, h.dispatcher, o, drv); err != nil {
			return kernel.UUID{}, err
		}
	default:
		return kernel.UUID{}, errs.NewStateIsInvalidError(
			"order "+o.Number().String(), o.Status().String(), "submit feedback")
	}

	fb, err := feedback.NewFeedback(kernel.NewUUID(), o.Number(), cmd.Rating(), cmd.Comment(), time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.FeedbackRepository().Add(ctx, fb); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	publish(ctx, h.publisher, events...)
	return fb.ID(), nil
}
