package commands

import (
	"context"
	"fmt"

	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/core/ports"
	"frangodahora/internal/pkg/errs"
)

// ReorderRouteCommandHandler rewrites a rider's route positions in one
// transaction. The rewrite is all-or-nothing: the submitted id list must name
// exactly the rider's current in-route orders, otherwise nothing changes.
type ReorderRouteCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.ChangeNotifier
}

// NewReorderRouteCommandHandler creates a handler for route reordering.
func NewReorderRouteCommandHandler(uowFactory DispatchUoWFactory, notifier ports.ChangeNotifier) ReorderRouteCommandHandler {
	return ReorderRouteCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle applies the new route order under the rider's lock.
func (h *ReorderRouteCommandHandler) Handle(ctx context.Context, cmd ReorderRouteCommand) error {
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

	if _, err := uow.RiderRepository().GetForUpdate(ctx, cmd.RiderID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	current, err := orderRepo.GetInRouteByRider(ctx, cmd.RiderID(), cmd.Day())
	if err != nil {
		return err
	}

	byID := make(map[int64]*order.Order, len(current))
	for _, o := range current {
		byID[o.ID()] = o
	}

	if len(cmd.OrderIDs()) != len(current) {
		return errs.NewValueIsInvalidErrorWithCause(
			"route order",
			fmt.Errorf("submitted %d orders but the route has %d", len(cmd.OrderIDs()), len(current)),
		)
	}

	for position, id := range cmd.OrderIDs() {
		aggregate, ok := byID[id]
		if !ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"route order",
				fmt.Errorf("order %d is not in the rider's route", id),
			)
		}

		if err = aggregate.Reposition(position + 1); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ports.EventOrdersChanged)
	return nil
}
