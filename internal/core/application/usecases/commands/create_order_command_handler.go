package commands

import (
	"context"
	"errors"

	"frangodahora/internal/core/domain/model/neighborhood"
	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/core/domain/model/stock"
	"frangodahora/internal/core/domain/services"
	"frangodahora/internal/core/ports"
	"frangodahora/internal/pkg/errs"
)

// CreateOrderCommandHandler admits and persists a manually entered order.
//
// The handler locks the day's stock row before checking availability, so two
// concurrent intakes for the same day serialize and the second one sees the
// first one's consumption. Unknown destination neighborhoods are registered
// in the delivery-fee table as a side effect of the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
	admission  services.Admission
	notifier   ports.ChangeNotifier
}

// NewCreateOrderCommandHandler creates a handler for manual order intake.
func NewCreateOrderCommandHandler(uowFactory IntakeUoWFactory, notifier ports.ChangeNotifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		admission:  services.NewAdmission(),
		notifier:   notifier,
	}
}

// Handle admits the order against the day's remaining stock and persists it.
// Returns the new order's id, or an InsufficientStockError when the requested
// quantity does not fit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stockRepo := uow.StockRepository()
	orderRepo := uow.OrderRepository()

	entry, err := stockRepo.GetForUpdate(ctx, cmd.Day())
	if err != nil {
		return 0, err
	}

	consumed, err := orderRepo.ConsumedQuantity(ctx, cmd.Day())
	if err != nil {
		return 0, err
	}

	availability := stock.NewAvailability(entry.Initial(), consumed)
	if err = h.admission.AdmitOrder(availability, cmd.Details().Quantity.Units()); err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(cmd.Day(), cmd.PlacedAt(), cmd.Channel(), cmd.Details())
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = h.registerNeighborhood(ctx, uow, cmd.Details()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.notifier.Notify(ports.EventOrdersChanged)
	return aggregate.ID(), nil
}

// registerNeighborhood records the delivery fee of a not-yet-known
// neighborhood so future intakes can suggest it.
func (h *CreateOrderCommandHandler) registerNeighborhood(
	ctx context.Context,
	uow IntakeUoW,
	details order.Details,
) error {
	if details.Neighborhood == "" || details.Address == order.PickupAddress {
		return nil
	}

	feeRepo := uow.NeighborhoodFeeRepository()

	_, err := feeRepo.GetByName(ctx, details.Neighborhood)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	fee, err := neighborhood.NewFee(details.Neighborhood, details.Pricing.DeliveryFee)
	if err != nil {
		return err
	}
	return feeRepo.Upsert(ctx, fee)
}
