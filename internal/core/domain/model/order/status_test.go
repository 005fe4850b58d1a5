package order_test

import (
	"testing"

	"frangodahora/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{
		order.StatusAwaitingMarketplace,
		order.StatusPending,
		order.StatusInRoute,
		order.StatusDelivered,
		order.StatusCancelled,
	}
	for _, s := range valid {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.StatusUnknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("confirm_only_from_awaiting", func(t *testing.T) {
		next, err := order.StatusAwaitingMarketplace.Confirm()
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, next)

		for _, s := range []order.Status{order.StatusPending, order.StatusInRoute, order.StatusDelivered, order.StatusCancelled} {
			_, err := s.Confirm()
			require.Error(t, err, s.String())
		}
	})

	t.Run("assign_only_from_pending", func(t *testing.T) {
		next, err := order.StatusPending.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.StatusInRoute, next)

		for _, s := range []order.Status{order.StatusAwaitingMarketplace, order.StatusInRoute, order.StatusDelivered, order.StatusCancelled} {
			_, err := s.Assign()
			require.Error(t, err, s.String())
		}
	})

	t.Run("deliver_only_from_in_route", func(t *testing.T) {
		next, err := order.StatusInRoute.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, next)

		for _, s := range []order.Status{order.StatusAwaitingMarketplace, order.StatusPending, order.StatusDelivered, order.StatusCancelled} {
			_, err := s.Deliver()
			require.Error(t, err, s.String())
		}
	})

	t.Run("cancel_from_any_non_terminal", func(t *testing.T) {
		for _, s := range []order.Status{order.StatusAwaitingMarketplace, order.StatusPending, order.StatusInRoute} {
			next, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.StatusCancelled, next)
		}
	})

	t.Run("terminal_states_reject_everything", func(t *testing.T) {
		for _, s := range []order.Status{order.StatusDelivered, order.StatusCancelled} {
			assert.True(t, s.IsTerminal())

			_, err := s.Confirm()
			require.Error(t, err)
			_, err = s.Assign()
			require.Error(t, err)
			_, err = s.Deliver()
			require.Error(t, err)
			_, err = s.Cancel()
			require.Error(t, err)
		}
	})
}

func TestStatus_ValidateCanHaveRider(t *testing.T) {
	require.NoError(t, order.StatusInRoute.ValidateCanHaveRider(true))
	require.NoError(t, order.StatusDelivered.ValidateCanHaveRider(true))
	// A delivered pickup order never had a rider.
	require.NoError(t, order.StatusDelivered.ValidateCanHaveRider(false))
	require.NoError(t, order.StatusPending.ValidateCanHaveRider(false))
	require.NoError(t, order.StatusCancelled.ValidateCanHaveRider(false))

	require.Error(t, order.StatusPending.ValidateCanHaveRider(true))
	require.Error(t, order.StatusCancelled.ValidateCanHaveRider(true))
	require.Error(t, order.StatusInRoute.ValidateCanHaveRider(false))
}
