package commands_test

import (
	"testing"
	"time"

	"frangodahora/internal/core/application/usecases/commands"
	"frangodahora/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func TestDeliverOrderCommandHandler_Handle_PickupFromPending(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeliverOrderCommand(21)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(testDay(t), time.Now(), order.ChannelWalkIn, testPickupDetails(t, 1))
	require.NoError(t, err)
	require.NoError(t, aggregate.AttachID(21))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, int64(21)).Return(aggregate, nil).Once()
	orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewDeliverOrderCommandHandler(orderUoWFactory{uow: uow}, new(RecordingNotifier))
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusDelivered, aggregate.Status())
}

func TestDeliverOrderCommandHandler_Handle_PendingDeliveryOrderIsRefused(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeliverOrderCommand(22)
	require.NoError(t, err)

	aggregate := pendingOrderWithID(t, 22)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, int64(22)).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewDeliverOrderCommandHandler(orderUoWFactory{uow: uow}, new(RecordingNotifier))
	require.Error(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusPending, aggregate.Status())
}
