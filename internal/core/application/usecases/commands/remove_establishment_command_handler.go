package commands

import (
	"context"
)

// RemoveEstablishmentCommandHandler deletes an establishment registration.
type RemoveEstablishmentCommandHandler struct {
	uowFactory EstablishmentUoWFactory
}

// NewRemoveEstablishmentCommandHandler creates a handler for establishment removal.
func NewRemoveEstablishmentCommandHandler(uowFactory EstablishmentUoWFactory) RemoveEstablishmentCommandHandler {
	return RemoveEstablishmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the establishment.
func (h *RemoveEstablishmentCommandHandler) Handle(ctx context.Context, cmd RemoveEstablishmentCommand) error {
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

	if err := uow.EstablishmentRepository().Delete(ctx, cmd.EstablishmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
