package commands

import (
	"context"

	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

type ConfirmDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	dispatcher services.DeliveryDispatcher
	publisher  ports.OrderEventPublisher
}

func NewConfirmDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.OrderEventPublisher,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDeliveryDispatcher(),
		publisher:  publisher,
	}
}

// Handle delivers an order that is out for delivery. The license must match
// the assigned driver's, otherwise AuthenticationMismatch is returned and
// nothing changes. On success the driver and vehicle are free again and
// every order queued behind this one moves up.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}
	if _, err = o.Status().Deliver(); err != nil {
		return err
	}

	drv, err := uow.DriverRepository().Get(ctx, o.DriverID())
	if err != nil {
		return err
	}
	if !drv.VerifyLicense(cmd.License()) {
		return errs.NewAuthenticationMismatchError("license")
	}

	events, err := completeDelivery(ctx, uow, h.dispatcher, o, drv)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, h.publisher, events...)
	return nil
}
