package commands

import (
	"context"

	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/core/ports"
	"frangodahora/internal/pkg/errs"
)

// AcceptMarketplaceOrderCommandHandler confirms an imported order on the
// marketplace and then promotes it locally.
//
// The remote confirm comes first and is fail-closed: when the marketplace
// call fails the local status stays AwaitingMarketplace, so the operator can
// retry. An order confirmed remotely but not committed locally is recovered
// by retrying the accept, which surfaces ErrOrderNotPending.
type AcceptMarketplaceOrderCommandHandler struct {
	uowFactory DecisionUoWFactory
	client     ports.MarketplaceClient
	notifier   ports.ChangeNotifier
}

// NewAcceptMarketplaceOrderCommandHandler creates a handler for accept decisions.
func NewAcceptMarketplaceOrderCommandHandler(
	uowFactory DecisionUoWFactory,
	client ports.MarketplaceClient,
	notifier ports.ChangeNotifier,
) AcceptMarketplaceOrderCommandHandler {
	return AcceptMarketplaceOrderCommandHandler{
		uowFactory: uowFactory,
		client:     client,
		notifier:   notifier,
	}
}

// Handle confirms the order remotely and promotes it to Pending locally.
func (h *AcceptMarketplaceOrderCommandHandler) Handle(ctx context.Context, cmd AcceptMarketplaceOrderCommand) error {
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

	if err = h.client.Confirm(ctx, token, *aggregate.ExternalID()); err != nil {
		return err
	}

	if err = aggregate.ConfirmMarketplace(); err != nil {
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

func (h *AcceptMarketplaceOrderCommandHandler) authenticate(
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
