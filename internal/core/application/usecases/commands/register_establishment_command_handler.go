package commands

import (
	"context"

	"frangodahora/internal/core/domain/model/establishment"
)

// RegisterEstablishmentCommandHandler persists a new establishment
// registration. New registrations start active with automations off.
type RegisterEstablishmentCommandHandler struct {
	uowFactory EstablishmentUoWFactory
}

// NewRegisterEstablishmentCommandHandler creates a handler for establishment
// registration.
func NewRegisterEstablishmentCommandHandler(uowFactory EstablishmentUoWFactory) RegisterEstablishmentCommandHandler {
	return RegisterEstablishmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the establishment and returns its local id.
func (h *RegisterEstablishmentCommandHandler) Handle(ctx context.Context, cmd RegisterEstablishmentCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	aggregate, err := establishment.NewEstablishment(cmd.RemoteID(), cmd.DeveloperToken(), cmd.Name())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EstablishmentRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}
