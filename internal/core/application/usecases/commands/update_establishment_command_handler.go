package commands

import (
	"context"
)

// UpdateEstablishmentCommandHandler updates an establishment's polling and
// automation flags.
type UpdateEstablishmentCommandHandler struct {
	uowFactory EstablishmentUoWFactory
}

// NewUpdateEstablishmentCommandHandler creates a handler for establishment updates.
func NewUpdateEstablishmentCommandHandler(uowFactory EstablishmentUoWFactory) UpdateEstablishmentCommandHandler {
	return UpdateEstablishmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the flag changes.
func (h *UpdateEstablishmentCommandHandler) Handle(ctx context.Context, cmd UpdateEstablishmentCommand) error {
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

	estRepo := uow.EstablishmentRepository()

	aggregate, err := estRepo.Get(ctx, cmd.EstablishmentID())
	if err != nil {
		return err
	}

	aggregate.SetActive(cmd.Active())
	aggregate.SetAutomations(cmd.AutoCloseStore(), cmd.AutoRejectOrders())

	if err = estRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
