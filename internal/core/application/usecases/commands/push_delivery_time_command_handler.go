package commands

import (
	"context"
	"log/slog"

	"frangodahora/internal/core/domain/model/establishment"
	"frangodahora/internal/core/ports"
)

// PushDeliveryTimeCommandHandler pushes the expected preparation time to the
// marketplace. The pushes run on the task queue, one task per establishment,
// so a slow or failing marketplace never blocks the request that changed the
// setting. A failed push is logged and the other establishments proceed.
type PushDeliveryTimeCommandHandler struct {
	uowFactory EstablishmentUoWFactory
	client     ports.MarketplaceClient
	queue      ports.TaskQueue
	logger     *slog.Logger
}

// NewPushDeliveryTimeCommandHandler creates a handler for preparation-time pushes.
func NewPushDeliveryTimeCommandHandler(
	uowFactory EstablishmentUoWFactory,
	client ports.MarketplaceClient,
	queue ports.TaskQueue,
	logger *slog.Logger,
) PushDeliveryTimeCommandHandler {
	return PushDeliveryTimeCommandHandler{
		uowFactory: uowFactory,
		client:     client,
		queue:      queue,
		logger:     logger,
	}
}

// Handle enqueues one push per active establishment.
func (h *PushDeliveryTimeCommandHandler) Handle(ctx context.Context, cmd PushDeliveryTimeCommand) error {
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

	active, err := uow.EstablishmentRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, est := range active {
		h.queue.Enqueue(h.pushTask(est, cmd.Minutes()))
	}
	return nil
}

func (h *PushDeliveryTimeCommandHandler) pushTask(est *establishment.Establishment, minutes int) ports.Task {
	remoteID := est.RemoteID()
	token := est.DeveloperToken()
	name := est.Name()

	return func(ctx context.Context) error {
		bearer, err := h.client.Authenticate(ctx, token)
		if err != nil {
			h.logger.ErrorContext(ctx, "delivery time push: authentication failed",
				"establishment", name, "error", err)
			return err
		}

		if err = h.client.SetDeliveryTime(ctx, bearer, remoteID, minutes); err != nil {
			h.logger.ErrorContext(ctx, "delivery time push failed",
				"establishment", name, "minutes", minutes, "error", err)
			return err
		}

		h.logger.InfoContext(ctx, "delivery time pushed",
			"establishment", name, "minutes", minutes)
		return nil
	}
}
