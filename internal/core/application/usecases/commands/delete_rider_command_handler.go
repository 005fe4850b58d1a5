package commands

import (
	"context"

	"frangodahora/internal/core/ports"
)

// DeleteRiderCommandHandler removes a rider after checking they have no
// route in progress.
type DeleteRiderCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.ChangeNotifier
}

// NewDeleteRiderCommandHandler creates a handler for rider deletion.
func NewDeleteRiderCommandHandler(uowFactory DispatchUoWFactory, notifier ports.ChangeNotifier) DeleteRiderCommandHandler {
	return DeleteRiderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle deletes the rider.
func (h *DeleteRiderCommandHandler) Handle(ctx context.Context, cmd DeleteRiderCommand) error {
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

	riderRepo := uow.RiderRepository()

	if _, err := riderRepo.GetForUpdate(ctx, cmd.RiderID()); err != nil {
		return err
	}

	inRoute, err := uow.OrderRepository().GetInRouteByRider(ctx, cmd.RiderID(), cmd.Day())
	if err != nil {
		return err
	}
	if len(inRoute) > 0 {
		return ErrRiderHasOrdersInRoute
	}

	if err = riderRepo.Delete(ctx, cmd.RiderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ports.EventRidersChanged)
	return nil
}
