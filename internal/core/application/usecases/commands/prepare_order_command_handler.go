package commands

import (
	"context"

	"catering/internal/core/ports"
)

// PrepareOrderCommandHandler moves a placed order into preparation and hands
// it to the readiness scheduler once the change is committed.
type PrepareOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	scheduler  ReadinessScheduler
	publisher  ports.OrderEventPublisher
}

func NewPrepareOrderCommandHandler(
	uowFactory OrderUoWFactory,
	scheduler ReadinessScheduler,
	publisher ports.OrderEventPublisher,
) PrepareOrderCommandHandler {
	return PrepareOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		publisher:  publisher,
	}
}

// Handle returns ObjectNotFound for an unknown order and StateIsInvalid when
// the order is not Placed. Scheduling happens only after a successful commit,
// so a failed preparation never produces a ready order.
func (h PrepareOrderCommandHandler) Handle(ctx context.Context, cmd PrepareOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if err = o.MarkPreparing(cmd.Category(), cmd.Chefs(), cmd.EtaMinutes()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	event, err := changedEvent(ctx, orderRepo, o)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.scheduler.Schedule(o.Number())
	publish(ctx, h.publisher, event)
	return nil
}
