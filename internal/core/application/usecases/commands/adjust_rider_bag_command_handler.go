package commands

import (
	"context"
	"errors"

	"frangodahora/internal/core/domain/model/rider"
	"frangodahora/internal/core/domain/model/stock"
	"frangodahora/internal/core/domain/services"
	"frangodahora/internal/core/ports"
	"frangodahora/internal/pkg/errs"
)

// AdjustRiderBagCommandHandler moves stock between the counter and a rider's
// bag. Unknown rider names are registered on the fly. Increases are admitted
// under the day's stock lock against what is left after pickup reservations
// and the allotments already out with other riders; decreases only need the
// rider's bag to stay non-negative.
type AdjustRiderBagCommandHandler struct {
	uowFactory BagUoWFactory
	admission  services.Admission
	notifier   ports.ChangeNotifier
}

// NewAdjustRiderBagCommandHandler creates a handler for bag adjustments.
func NewAdjustRiderBagCommandHandler(uowFactory BagUoWFactory, notifier ports.ChangeNotifier) AdjustRiderBagCommandHandler {
	return AdjustRiderBagCommandHandler{
		uowFactory: uowFactory,
		admission:  services.NewAdmission(),
		notifier:   notifier,
	}
}

// Handle applies the bag adjustment.
func (h *AdjustRiderBagCommandHandler) Handle(ctx context.Context, cmd AdjustRiderBagCommand) error {
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

	riderRepo := uow.RiderRepository()

	aggregate, err := h.findOrRegisterRider(ctx, riderRepo, cmd.RiderName())
	if err != nil {
		return err
	}

	if cmd.Delta() > 0 {
		if err = h.admitIncrease(ctx, uow, cmd); err != nil {
			return err
		}
	}

	assignment, err := riderRepo.GetAssignment(ctx, aggregate.ID(), cmd.Day())
	if err != nil {
		return err
	}

	if err = assignment.Adjust(cmd.Delta()); err != nil {
		return err
	}

	if err = riderRepo.SaveAssignment(ctx, assignment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ports.EventRidersChanged)
	return nil
}

func (h *AdjustRiderBagCommandHandler) findOrRegisterRider(
	ctx context.Context,
	riderRepo ports.RiderRepository,
	name string,
) (*rider.Rider, error) {
	aggregate, err := riderRepo.FindByName(ctx, name)
	if err == nil {
		return aggregate, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	aggregate, err = rider.NewRider(name)
	if err != nil {
		return nil, err
	}
	if err = riderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}
	return aggregate, nil
}

// admitIncrease serializes on the day's stock row and checks the increase
// against the allottable remainder.
func (h *AdjustRiderBagCommandHandler) admitIncrease(ctx context.Context, uow BagUoW, cmd AdjustRiderBagCommand) error {
	entry, err := uow.StockRepository().GetForUpdate(ctx, cmd.Day())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	consumed, err := orderRepo.ConsumedQuantity(ctx, cmd.Day())
	if err != nil {
		return err
	}

	reserved, err := orderRepo.ReservedForPickup(ctx, cmd.Day())
	if err != nil {
		return err
	}

	totalAllotted, err := uow.RiderRepository().TotalAllotted(ctx, cmd.Day())
	if err != nil {
		return err
	}

	availability := stock.NewAvailability(entry.Initial(), consumed)
	return h.admission.AdmitBagIncrease(availability, reserved, totalAllotted, cmd.Delta())
}
