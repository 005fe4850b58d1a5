package commands_test

import (
	"errors"
	"testing"

	"frangodahora/internal/core/application/usecases/commands"
	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/core/domain/model/rider"
	"frangodahora/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func inRouteOrderWithID(t *testing.T, id, riderID int64, position int) *order.Order {
	t.Helper()
	aggregate := pendingOrderWithID(t, id)
	require.NoError(t, aggregate.Assign(riderID, position))
	return aggregate
}

func TestReorderRouteCommandHandler_Handle_RewritesPositionsContiguously(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReorderRouteCommand(3, testDay(t), []int64{23, 21, 22})
	require.NoError(t, err)

	first := inRouteOrderWithID(t, 21, 3, 1)
	second := inRouteOrderWithID(t, 22, 3, 2)
	third := inRouteOrderWithID(t, 23, 3, 3)
	carrier, err := rider.RestoreRider(3, "Zé")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RiderRepository").Return(riderRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	riderRepo.On("GetForUpdate", ctx, int64(3)).Return(carrier, nil).Once()
	orderRepo.On("GetInRouteByRider", ctx, int64(3), cmd.Day()).
		Return([]*order.Order{first, second, third}, nil).Once()
	orderRepo.On("Update", ctx, third).Return(nil).Once()
	orderRepo.On("Update", ctx, first).Return(nil).Once()
	orderRepo.On("Update", ctx, second).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	notifier := new(RecordingNotifier)
	h := commands.NewReorderRouteCommandHandler(dispatchUoWFactory{uow: uow}, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, 1, third.RoutePosition())
	require.Equal(t, 2, first.RoutePosition())
	require.Equal(t, 3, second.RoutePosition())
	require.Equal(t, []string{"orders-changed"}, notifier.Events)
	orderRepo.AssertExpectations(t)
}

func TestReorderRouteCommandHandler_Handle_WrongLengthIsRefused(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReorderRouteCommand(3, testDay(t), []int64{21})
	require.NoError(t, err)

	first := inRouteOrderWithID(t, 21, 3, 1)
	second := inRouteOrderWithID(t, 22, 3, 2)
	carrier, err := rider.RestoreRider(3, "Zé")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RiderRepository").Return(riderRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	riderRepo.On("GetForUpdate", ctx, int64(3)).Return(carrier, nil).Once()
	orderRepo.On("GetInRouteByRider", ctx, int64(3), cmd.Day()).
		Return([]*order.Order{first, second}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewReorderRouteCommandHandler(dispatchUoWFactory{uow: uow}, new(RecordingNotifier))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReorderRouteCommandHandler_Handle_ForeignOrderIsRefused(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReorderRouteCommand(3, testDay(t), []int64{21, 99})
	require.NoError(t, err)

	first := inRouteOrderWithID(t, 21, 3, 1)
	second := inRouteOrderWithID(t, 22, 3, 2)
	carrier, err := rider.RestoreRider(3, "Zé")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RiderRepository").Return(riderRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	riderRepo.On("GetForUpdate", ctx, int64(3)).Return(carrier, nil).Once()
	orderRepo.On("GetInRouteByRider", ctx, int64(3), cmd.Day()).
		Return([]*order.Order{first, second}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	notifier := new(RecordingNotifier)
	h := commands.NewReorderRouteCommandHandler(dispatchUoWFactory{uow: uow}, notifier)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Empty(t, notifier.Events)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestReorderRouteCommandHandler_Handle_UpdateFailureAbortsWithoutCommit(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReorderRouteCommand(3, testDay(t), []int64{22, 21})
	require.NoError(t, err)

	first := inRouteOrderWithID(t, 21, 3, 1)
	second := inRouteOrderWithID(t, 22, 3, 2)
	carrier, err := rider.RestoreRider(3, "Zé")
	require.NoError(t, err)

	boom := errors.New("connection reset")

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RiderRepository").Return(riderRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	riderRepo.On("GetForUpdate", ctx, int64(3)).Return(carrier, nil).Once()
	orderRepo.On("GetInRouteByRider", ctx, int64(3), cmd.Day()).
		Return([]*order.Order{first, second}, nil).Once()
	orderRepo.On("Update", ctx, second).Return(nil).Once()
	orderRepo.On("Update", ctx, first).Return(boom).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	notifier := new(RecordingNotifier)
	h := commands.NewReorderRouteCommandHandler(dispatchUoWFactory{uow: uow}, notifier)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, boom)
	require.Empty(t, notifier.Events)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertCalled(t, "Rollback", ctx)
}

func TestNewReorderRouteCommand_RejectsDuplicateAndEmptyRoutes(t *testing.T) {
	_, err := commands.NewReorderRouteCommand(3, testDay(t), []int64{21, 21})
	require.ErrorIs(t, err, commands.ErrRouteOrderHasDuplicate)

	_, err = commands.NewReorderRouteCommand(3, testDay(t), nil)
	require.ErrorIs(t, err, commands.ErrRouteOrderIsEmpty)
}
