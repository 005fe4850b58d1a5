package commands_test

import (
	"testing"
	"time"

	"frangodahora/internal/core/application/usecases/commands"
	"frangodahora/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImportMarketplaceOrderCommandHandler_Handle_NewOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewImportMarketplaceOrderCommand(
		9001, 77, testDay(t), time.Now(), testDetails(t, 2))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("AddIfAbsent", ctx, mock.AnythingOfType("*order.Order")).Return(true, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	notifier := new(RecordingNotifier)
	h := commands.NewImportMarketplaceOrderCommandHandler(orderUoWFactory{uow: uow}, notifier)

	inserted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, inserted)
	require.Equal(t, []string{ports.EventOrdersChanged}, notifier.Events)
}

func TestImportMarketplaceOrderCommandHandler_Handle_DuplicateIsSilent(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewImportMarketplaceOrderCommand(
		9001, 77, testDay(t), time.Now(), testDetails(t, 2))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("AddIfAbsent", ctx, mock.AnythingOfType("*order.Order")).Return(false, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	notifier := new(RecordingNotifier)
	h := commands.NewImportMarketplaceOrderCommandHandler(orderUoWFactory{uow: uow}, notifier)

	inserted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.False(t, inserted)
	require.Empty(t, notifier.Events)
}

func TestNewImportMarketplaceOrderCommand_InvalidExternalID(t *testing.T) {
	_, err := commands.NewImportMarketplaceOrderCommand(0, 77, testDay(t), time.Now(), testDetails(t, 1))
	require.ErrorIs(t, err, commands.ErrExternalIDIsInvalid)
}
