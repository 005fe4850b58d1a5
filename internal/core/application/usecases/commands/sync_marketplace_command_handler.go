package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"frangodahora/internal/core/domain/model/establishment"
	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/marketplace"
	"frangodahora/internal/core/domain/services"
	"frangodahora/internal/core/ports"
	"frangodahora/internal/pkg/errs"
)

// ErrSyncCycleInProgress is returned when a cycle is requested while the
// previous one is still running. The caller treats it as "already being
// handled", not as a failure.
var ErrSyncCycleInProgress = errors.New("a marketplace sync cycle is already running")

// OutOfStockRejectionReason is the customer-visible reason sent to the
// marketplace when an order is auto-rejected for lack of stock.
const OutOfStockRejectionReason = "Estoque esgotado no momento"

// SyncMarketplaceCommandHandler runs the polling cycle that keeps the local
// order store aligned with the marketplace.
//
// One cycle: seed a running stock counter from the ledger, then for every
// active establishment authenticate, reconcile the storefront open/closed
// state, list the pending orders, and either import or auto-reject each one.
// Remote failures are logged and skip only the establishment or order they
// hit; the cycle always runs to the end.
//
// Cycles never overlap. A handler instance carries an in-flight flag, so the
// cron trigger and the manual "check now" trigger share one instance.
type SyncMarketplaceCommandHandler struct {
	uowFactory SyncUoWFactory
	client     ports.MarketplaceClient
	importer   MarketplaceOrderImporter
	logger     *slog.Logger

	inFlight atomic.Bool
}

// NewSyncMarketplaceCommandHandler creates the shared sync cycle handler.
func NewSyncMarketplaceCommandHandler(
	uowFactory SyncUoWFactory,
	client ports.MarketplaceClient,
	importer MarketplaceOrderImporter,
	logger *slog.Logger,
) *SyncMarketplaceCommandHandler {
	return &SyncMarketplaceCommandHandler{
		uowFactory: uowFactory,
		client:     client,
		importer:   importer,
		logger:     logger,
	}
}

// Handle runs one polling cycle, or returns ErrSyncCycleInProgress when one
// is already running.
func (h *SyncMarketplaceCommandHandler) Handle(ctx context.Context, cmd SyncMarketplaceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.inFlight.CompareAndSwap(false, true) {
		return ErrSyncCycleInProgress
	}
	defer h.inFlight.Store(false)

	day := kernel.NewDay(time.Now())

	remaining, establishments, err := h.cycleSnapshot(ctx, day)
	if err != nil {
		return err
	}

	counter := services.NewCycleCounter(remaining)
	for _, est := range establishments {
		h.syncEstablishment(ctx, est, day, counter)
	}

	h.logger.InfoContext(ctx, "sync cycle finished",
		"day", day.String(),
		"establishments", len(establishments),
		"remaining", counter.Remaining())
	return nil
}

// cycleSnapshot reads the remaining stock and the establishments to poll.
// The snapshot is intentionally not locked: marketplace admission works on a
// cycle-local counter, and manual intake keeps its own serialization.
func (h *SyncMarketplaceCommandHandler) cycleSnapshot(
	ctx context.Context,
	day kernel.Day,
) (float64, []*establishment.Establishment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entry, err := uow.StockRepository().Get(ctx, day)
	if err != nil {
		return 0, nil, err
	}

	consumed, err := uow.OrderRepository().ConsumedQuantity(ctx, day)
	if err != nil {
		return 0, nil, err
	}

	establishments, err := uow.EstablishmentRepository().GetAllActive(ctx)
	if err != nil {
		return 0, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, nil, err
	}

	return entry.Initial() - consumed, establishments, nil
}

func (h *SyncMarketplaceCommandHandler) syncEstablishment(
	ctx context.Context,
	est *establishment.Establishment,
	day kernel.Day,
	counter *services.CycleCounter,
) {
	logger := h.logger.With("establishment", est.Name())

	token, err := h.client.Authenticate(ctx, est.DeveloperToken())
	if err != nil {
		logger.ErrorContext(ctx, "authentication failed, skipping establishment", "error", err)
		return
	}

	if est.AutoCloseStore() {
		h.reconcileStorefront(ctx, logger, token, est.RemoteID(), counter.Remaining() >= 1)
	}

	pending, err := h.client.PendingOrders(ctx, token, est.RemoteID())
	if err != nil {
		logger.ErrorContext(ctx, "pending order listing failed", "error", err)
		return
	}

	for _, entry := range pending {
		h.handlePendingOrder(ctx, logger, token, est, day, counter, entry.Code)
	}
}

// reconcileStorefront closes the remote storefront when less than one unit
// remains and reopens it when stock is back.
func (h *SyncMarketplaceCommandHandler) reconcileStorefront(
	ctx context.Context,
	logger *slog.Logger,
	token string,
	remoteID int64,
	shouldBeOpen bool,
) {
	open, err := h.client.StoreStatus(ctx, token, remoteID)
	if err != nil {
		logger.ErrorContext(ctx, "storefront status check failed", "error", err)
		return
	}
	if open == shouldBeOpen {
		return
	}

	if err = h.client.SetStoreStatus(ctx, token, remoteID, shouldBeOpen); err != nil {
		logger.ErrorContext(ctx, "storefront toggle failed", "open", shouldBeOpen, "error", err)
		return
	}
	logger.InfoContext(ctx, "storefront toggled", "open", shouldBeOpen)
}

func (h *SyncMarketplaceCommandHandler) handlePendingOrder(
	ctx context.Context,
	logger *slog.Logger,
	token string,
	est *establishment.Establishment,
	day kernel.Day,
	counter *services.CycleCounter,
	code int64,
) {
	remote, err := h.client.OrderDetails(ctx, token, code)
	if err != nil {
		logger.ErrorContext(ctx, "order detail fetch failed", "external_id", code, "error", err)
		return
	}

	quantity := marketplace.StapleQuantity(remote.Items)

	if err = counter.Admit(quantity, est.AutoRejectOrders()); err != nil {
		h.autoReject(ctx, logger, token, code, quantity, counter.Remaining())
		return
	}

	details, err := remote.ToOrderDetails()
	if err != nil {
		logger.ErrorContext(ctx, "order payload is unusable", "external_id", code, "error", err)
		return
	}

	cmd, err := NewImportMarketplaceOrderCommand(code, est.RemoteID(), day, time.Now(), details)
	if err != nil {
		logger.ErrorContext(ctx, "order import command rejected", "external_id", code, "error", err)
		return
	}

	inserted, err := h.importer.Handle(ctx, cmd)
	if err != nil {
		logger.ErrorContext(ctx, "order import failed", "external_id", code, "error", err)
		return
	}

	if inserted {
		counter.Consume(quantity)
		logger.InfoContext(ctx, "order imported",
			"external_id", code, "quantity", quantity, "remaining", counter.Remaining())
	}
}

// autoReject tells the marketplace the order does not fit the remaining
// stock. An order that meanwhile stopped being pending is already resolved;
// anything else is logged and retried naturally on the next cycle.
func (h *SyncMarketplaceCommandHandler) autoReject(
	ctx context.Context,
	logger *slog.Logger,
	token string,
	code int64,
	quantity, remaining float64,
) {
	logger.WarnContext(ctx, "order exceeds remaining stock, rejecting",
		"external_id", code, "quantity", quantity, "remaining", remaining)

	err := h.client.Cancel(ctx, token, code, OutOfStockRejectionReason)
	switch {
	case errors.Is(err, errs.ErrOrderNotPending):
		logger.InfoContext(ctx, "order already resolved on marketplace", "external_id", code)
	case err != nil:
		logger.ErrorContext(ctx, "auto-rejection failed", "external_id", code, "error", err)
	}
}
