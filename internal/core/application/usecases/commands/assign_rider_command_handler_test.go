package commands_test

import (
	"testing"
	"time"

	"frangodahora/internal/core/application/usecases/commands"
	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/core/domain/model/rider"
	"frangodahora/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrderWithID(t *testing.T, id int64) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(testDay(t), time.Now(), order.ChannelWalkIn, testDetails(t, 1))
	require.NoError(t, err)
	require.NoError(t, aggregate.AttachID(id))
	return aggregate
}

func TestAssignRiderCommandHandler_Handle_AppendsToRoute(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignRiderCommand(10, 3)
	require.NoError(t, err)

	aggregate := pendingOrderWithID(t, 10)
	carrier, err := rider.RestoreRider(3, "Zé")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RiderRepository").Return(riderRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	riderRepo.On("GetForUpdate", ctx, int64(3)).Return(carrier, nil).Once()
	orderRepo.On("Get", ctx, int64(10)).Return(aggregate, nil).Once()
	orderRepo.On("MaxRoutePosition", ctx, int64(3), aggregate.Day()).Return(4, nil).Once()
	orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAssignRiderCommandHandler(dispatchUoWFactory{uow: uow}, new(RecordingNotifier))
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.StatusInRoute, aggregate.Status())
	require.Equal(t, 5, aggregate.RoutePosition())
	require.NotNil(t, aggregate.Rider())
	require.Equal(t, int64(3), *aggregate.Rider())
}

func TestAssignRiderCommandHandler_Handle_UnknownRider(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignRiderCommand(10, 99)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RiderRepository").Return(riderRepo).Once()
	riderRepo.On("GetForUpdate", ctx, int64(99)).
		Return(nil, errs.NewObjectNotFoundError("rider", int64(99))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAssignRiderCommandHandler(dispatchUoWFactory{uow: uow}, new(RecordingNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
