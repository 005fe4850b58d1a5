package services_test

import (
	"testing"

	"frangodahora/internal/core/domain/model/stock"
	"frangodahora/internal/core/domain/services"
	"frangodahora/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmission_AdmitOrder(t *testing.T) {
	admission := services.NewAdmission()

	t.Run("accepts_when_stock_suffices", func(t *testing.T) {
		availability := stock.NewAvailability(10, 7.5)
		require.NoError(t, admission.AdmitOrder(availability, 2.5))
	})

	t.Run("accepts_exact_remaining", func(t *testing.T) {
		availability := stock.NewAvailability(10, 9)
		require.NoError(t, admission.AdmitOrder(availability, 1))
	})

	t.Run("rejects_when_request_exceeds_remaining", func(t *testing.T) {
		availability := stock.NewAvailability(10, 9.5)

		err := admission.AdmitOrder(availability, 1)
		require.ErrorIs(t, err, errs.ErrInsufficientStock)

		var stockErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.InDelta(t, 0.5, stockErr.Remaining, 0)
	})

	t.Run("rejects_everything_when_overcommitted", func(t *testing.T) {
		availability := stock.NewAvailability(10, 12)
		require.ErrorIs(t, admission.AdmitOrder(availability, 0.5), errs.ErrInsufficientStock)
	})

	t.Run("rejects_non_positive_request", func(t *testing.T) {
		availability := stock.NewAvailability(10, 0)
		require.ErrorIs(t, admission.AdmitOrder(availability, 0), errs.ErrValueIsInvalid)
	})
}

func TestAdmission_AdmitBagIncrease(t *testing.T) {
	admission := services.NewAdmission()
	availability := stock.NewAvailability(30, 10)

	t.Run("accepts_within_allottable", func(t *testing.T) {
		// 30 initial − 4 reserved for pickups − 20 already allotted = 6.
		require.NoError(t, admission.AdmitBagIncrease(availability, 4, 20, 6))
	})

	t.Run("rejects_beyond_allottable", func(t *testing.T) {
		err := admission.AdmitBagIncrease(availability, 4, 20, 6.5)
		require.ErrorIs(t, err, errs.ErrInsufficientStock)
	})

	t.Run("rejects_non_positive_increase", func(t *testing.T) {
		require.Error(t, admission.AdmitBagIncrease(availability, 0, 0, 0))
		require.Error(t, admission.AdmitBagIncrease(availability, 0, 0, -2))
	})
}

func TestCycleCounter(t *testing.T) {
	t.Run("auto_reject_disabled_accepts_beyond_stock", func(t *testing.T) {
		counter := services.NewCycleCounter(1)
		require.NoError(t, counter.Admit(5, false))
	})

	t.Run("auto_reject_enabled_tracks_consumption_within_cycle", func(t *testing.T) {
		counter := services.NewCycleCounter(2)

		require.NoError(t, counter.Admit(1, true))
		counter.Consume(1)

		err := counter.Admit(2, true)
		require.ErrorIs(t, err, errs.ErrInsufficientStock)

		require.NoError(t, counter.Admit(1, true))
		counter.Consume(1)
		assert.InDelta(t, 0.0, counter.Remaining(), 0)
	})
}
