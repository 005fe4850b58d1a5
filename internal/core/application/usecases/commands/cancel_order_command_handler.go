package commands

import (
	"context"

	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/core/ports"
)

// CancelOrderCommandHandler cancels a local order. Orders still awaiting a
// marketplace decision are refused; they must be rejected so the marketplace
// side is informed.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.ChangeNotifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.ChangeNotifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle cancels the order and releases its stock.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if aggregate.Status() == order.StatusAwaitingMarketplace {
		return order.ErrAwaitingOrdersMustBeRejected
	}

	if err = aggregate.Cancel(); err != nil {
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
