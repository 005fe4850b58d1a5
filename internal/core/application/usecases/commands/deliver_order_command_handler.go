package commands

import (
	"context"

	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/core/ports"
)

// DeliverOrderCommandHandler completes an order. In-route orders go through
// the normal Deliver transition; pending pickup orders are collected at the
// counter without ever entering a route.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.ChangeNotifier
}

// NewDeliverOrderCommandHandler creates a handler for order completion.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.ChangeNotifier) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle marks the order delivered.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.IsPickup() && aggregate.Status() == order.StatusPending {
		err = aggregate.MarkPickedUp()
	} else {
		err = aggregate.Deliver()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ports.EventOrdersChanged)
	return nil
}
