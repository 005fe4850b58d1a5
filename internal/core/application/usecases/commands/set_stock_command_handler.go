package commands

import (
	"context"

	"frangodahora/internal/core/domain/model/stock"
	"frangodahora/internal/core/ports"
)

// SetStockCommandHandler records the day's initial stock and tells connected
// screens to refresh their availability view.
type SetStockCommandHandler struct {
	uowFactory StockUoWFactory
	notifier   ports.ChangeNotifier
}

// NewSetStockCommandHandler creates a handler for stock entry operations.
func NewSetStockCommandHandler(uowFactory StockUoWFactory, notifier ports.ChangeNotifier) SetStockCommandHandler {
	return SetStockCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle upserts the stock entry for the command's day.
func (h *SetStockCommandHandler) Handle(ctx context.Context, cmd SetStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entry, err := stock.NewStockDay(cmd.Day(), cmd.Quantity())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StockRepository().Upsert(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ports.EventStockChanged)
	return nil
}
