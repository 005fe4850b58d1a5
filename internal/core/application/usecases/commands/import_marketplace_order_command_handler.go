package commands

import (
	"context"

	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/core/ports"
)

// MarketplaceOrderImporter is implemented by the import handler. The sync
// engine depends on this interface instead of the concrete handler so its
// tests can observe which orders a cycle imported.
type MarketplaceOrderImporter interface {
	Handle(ctx context.Context, cmd ImportMarketplaceOrderCommand) (bool, error)
}

// ImportMarketplaceOrderCommandHandler persists remote orders with an
// insert-if-absent keyed on the external order code. The same order seen by
// two overlapping polling cycles, or by a cycle and the webhook, is stored
// exactly once.
type ImportMarketplaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.ChangeNotifier
}

// NewImportMarketplaceOrderCommandHandler creates a handler for marketplace
// order imports.
func NewImportMarketplaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.ChangeNotifier,
) ImportMarketplaceOrderCommandHandler {
	return ImportMarketplaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle imports the order unless its external code is already known.
// Returns true when the order was genuinely new. Only a genuine insert
// notifies connected screens; duplicates are silent.
func (h *ImportMarketplaceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ImportMarketplaceOrderCommand,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	aggregate, err := order.NewMarketplaceOrder(
		cmd.ExternalID(),
		cmd.RemoteEstablishmentID(),
		cmd.Day(),
		cmd.PlacedAt(),
		cmd.Details(),
	)
	if err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inserted, err := uow.OrderRepository().AddIfAbsent(ctx, aggregate)
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	if inserted {
		h.notifier.Notify(ports.EventOrdersChanged)
	}
	return inserted, nil
}
