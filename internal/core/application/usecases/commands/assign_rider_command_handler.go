package commands

import (
	"context"

	"frangodahora/internal/core/ports"
)

// AssignRiderCommandHandler appends a pending order to a rider's route.
//
// The handler locks the rider's row before reading the route's highest
// position, so two concurrent assignments to the same rider serialize and
// cannot produce duplicate positions.
type AssignRiderCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.ChangeNotifier
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(uowFactory DispatchUoWFactory, notifier ports.ChangeNotifier) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle assigns the order to the rider at the end of their route.
func (h *AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	maxPosition, err := orderRepo.MaxRoutePosition(ctx, cmd.RiderID(), aggregate.Day())
	if err != nil {
		return err
	}

	if err = aggregate.Assign(cmd.RiderID(), maxPosition+1); err != nil {
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
