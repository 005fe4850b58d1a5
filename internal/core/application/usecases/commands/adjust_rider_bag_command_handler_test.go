package commands_test

import (
	"testing"

	"frangodahora/internal/core/application/usecases/commands"
	"frangodahora/internal/core/domain/model/rider"
	"frangodahora/internal/core/domain/model/stock"
	"frangodahora/internal/core/ports"
	"frangodahora/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdjustRiderBagCommandHandler_Handle_RegistersUnknownRider(t *testing.T) {
	ctx := t.Context()
	day := testDay(t)
	cmd, err := commands.NewAdjustRiderBagCommand("Carlão", day, 3)
	require.NoError(t, err)

	entry, err := stock.NewStockDay(day, 20)
	require.NoError(t, err)
	assignment, err := rider.NewDailyAssignment(5, day)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RiderRepository").Return(riderRepo)
	uow.On("StockRepository").Return(stockRepo).Once()
	uow.On("OrderRepository").Return(orderRepo)

	riderRepo.On("FindByName", ctx, "Carlão").
		Return(nil, errs.NewObjectNotFoundError("rider", "Carlão")).Once()
	riderRepo.On("Add", ctx, mock.AnythingOfType("*rider.Rider")).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*rider.Rider).AttachID(5))
		}).
		Return(nil).Once()

	stockRepo.On("GetForUpdate", ctx, day).Return(entry, nil).Once()
	orderRepo.On("ConsumedQuantity", ctx, day).Return(4.0, nil).Once()
	orderRepo.On("ReservedForPickup", ctx, day).Return(2.0, nil).Once()
	riderRepo.On("TotalAllotted", ctx, day).Return(10.0, nil).Once()

	riderRepo.On("GetAssignment", ctx, int64(5), day).Return(assignment, nil).Once()
	riderRepo.On("SaveAssignment", ctx, assignment).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	notifier := new(RecordingNotifier)
	h := commands.NewAdjustRiderBagCommandHandler(bagUoWFactory{uow: uow}, notifier)

	require.NoError(t, h.Handle(ctx, cmd))
	require.InDelta(t, 3.0, assignment.Bag(), 0)
	require.Equal(t, []string{ports.EventRidersChanged}, notifier.Events)
	riderRepo.AssertExpectations(t)
}

func TestAdjustRiderBagCommandHandler_Handle_IncreaseBeyondAllottable(t *testing.T) {
	ctx := t.Context()
	day := testDay(t)
	// 20 initial − 2 reserved − 10 allotted leaves 8; asking for 9 fails.
	cmd, err := commands.NewAdjustRiderBagCommand("Zé", day, 9)
	require.NoError(t, err)

	entry, err := stock.NewStockDay(day, 20)
	require.NoError(t, err)
	carrier, err := rider.RestoreRider(5, "Zé")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RiderRepository").Return(riderRepo)
	uow.On("StockRepository").Return(stockRepo).Once()
	uow.On("OrderRepository").Return(orderRepo)

	riderRepo.On("FindByName", ctx, "Zé").Return(carrier, nil).Once()
	stockRepo.On("GetForUpdate", ctx, day).Return(entry, nil).Once()
	orderRepo.On("ConsumedQuantity", ctx, day).Return(4.0, nil).Once()
	orderRepo.On("ReservedForPickup", ctx, day).Return(2.0, nil).Once()
	riderRepo.On("TotalAllotted", ctx, day).Return(10.0, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAdjustRiderBagCommandHandler(bagUoWFactory{uow: uow}, new(RecordingNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	riderRepo.AssertNotCalled(t, "SaveAssignment", mock.Anything, mock.Anything)
}

func TestAdjustRiderBagCommandHandler_Handle_DecreaseSkipsAdmission(t *testing.T) {
	ctx := t.Context()
	day := testDay(t)
	cmd, err := commands.NewAdjustRiderBagCommand("Zé", day, -2)
	require.NoError(t, err)

	carrier, err := rider.RestoreRider(5, "Zé")
	require.NoError(t, err)
	assignment, err := rider.RestoreDailyAssignment(5, day, 6)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RiderRepository").Return(riderRepo)
	riderRepo.On("FindByName", ctx, "Zé").Return(carrier, nil).Once()
	riderRepo.On("GetAssignment", ctx, int64(5), day).Return(assignment, nil).Once()
	riderRepo.On("SaveAssignment", ctx, assignment).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAdjustRiderBagCommandHandler(bagUoWFactory{uow: uow}, new(RecordingNotifier))
	require.NoError(t, h.Handle(ctx, cmd))
	require.InDelta(t, 4.0, assignment.Bag(), 0)
	uow.AssertNotCalled(t, "StockRepository")
}
