package commands

import (
	"context"

	"frangodahora/internal/core/domain/model/stock"
	"frangodahora/internal/core/domain/services"
	"frangodahora/internal/core/ports"
)

// UpdateOrderCommandHandler edits a non-terminal order. A quantity increase
// is re-admitted against the day's remaining stock under the stock lock;
// decreases and other edits pass through.
type UpdateOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
	admission  services.Admission
	notifier   ports.ChangeNotifier
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(uowFactory IntakeUoWFactory, notifier ports.ChangeNotifier) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		admission:  services.NewAdmission(),
		notifier:   notifier,
	}
}

// Handle replaces the order's attributes.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	delta := cmd.Details().Quantity.Units() - aggregate.Quantity().Units()
	if delta > 0 {
		entry, lockErr := uow.StockRepository().GetForUpdate(ctx, aggregate.Day())
		if lockErr != nil {
			return lockErr
		}

		consumed, consumedErr := orderRepo.ConsumedQuantity(ctx, aggregate.Day())
		if consumedErr != nil {
			return consumedErr
		}

		availability := stock.NewAvailability(entry.Initial(), consumed)
		if err = h.admission.AdmitOrder(availability, delta); err != nil {
			return err
		}
	}

	if err = aggregate.UpdateDetails(cmd.Details()); err != nil {
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
