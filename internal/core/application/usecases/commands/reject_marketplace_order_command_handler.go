package commands

import (
	"context"
	"errors"
	"log/slog"

	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/core/ports"
	"frangodahora/internal/pkg/errs"
)

// RejectMarketplaceOrderCommandHandler rejects an imported order on the
// marketplace and cancels it locally.
//
// Unlike accept, reject reconciles on ErrOrderNotPending: when the
// marketplace reports the order already resolved, the local cancellation
// proceeds anyway so both sides converge.
type RejectMarketplaceOrderCommandHandler struct {
	uowFactory DecisionUoWFactory
	client     ports.MarketplaceClient
	notifier   ports.ChangeNotifier
	logger     *slog.Logger
}

// NewRejectMarketplaceOrderCommandHandler creates a handler for reject decisions.
func NewRejectMarketplaceOrderCommandHandler(
	uowFactory DecisionUoWFactory,
	client ports.MarketplaceClient,
	notifier ports.ChangeNotifier,
	logger *slog.Logger,
) RejectMarketplaceOrderCommandHandler {
	return RejectMarketplaceOrderCommandHandler{
		uowFactory: uowFactory,
		client:     client,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle rejects the order remotely and cancels it locally.
func (h *RejectMarketplaceOrderCommandHandler) Handle(ctx context.Context, cmd RejectMarketplaceOrderCommand) error {
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
	if aggregate.ExternalID() == nil {
		return order.ErrNotAMarketplaceOrder
	}

	token, err := h.authenticate(ctx, uow, aggregate)
	if err != nil {
		return err
	}

	err = h.client.Cancel(ctx, token, *aggregate.ExternalID(), cmd.Reason())
	switch {
	case errors.Is(err, errs.ErrOrderNotPending):
		h.logger.WarnContext(ctx, "order already resolved on marketplace, cancelling locally",
			"order_id", aggregate.ID(),
			"external_id", *aggregate.ExternalID())
	case err != nil:
		return err
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

func (h *RejectMarketplaceOrderCommandHandler) authenticate(
	ctx context.Context,
	uow DecisionUoW,
	aggregate *order.Order,
) (string, error) {
	remoteID := aggregate.ExternalEstablishmentID()
	if remoteID == nil {
		return "", errs.NewValueIsRequiredError("establishment id on marketplace order")
	}

	est, err := uow.EstablishmentRepository().GetByRemoteID(ctx, *remoteID)
	if err != nil {
		return "", err
	}

	return h.client.Authenticate(ctx, est.DeveloperToken())
}
