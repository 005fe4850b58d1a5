package stock_test

import (
	"testing"
	"time"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockDay(t *testing.T) {
	day := kernel.NewDay(time.Now())

	t.Run("valid", func(t *testing.T) {
		s, err := stock.NewStockDay(day, 30)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.InDelta(t, 30.0, s.Initial(), 0)
		assert.True(t, s.Day().IsEqual(day))
	})

	t.Run("zero_initial_is_valid", func(t *testing.T) {
		_, err := stock.NewStockDay(day, 0)
		require.NoError(t, err)
	})

	t.Run("negative_initial_is_invalid", func(t *testing.T) {
		_, err := stock.NewStockDay(day, -1)
		require.Error(t, err)
	})

	t.Run("unconstructed_day_is_invalid", func(t *testing.T) {
		_, err := stock.NewStockDay(kernel.Day{}, 10)
		require.Error(t, err)
	})
}

func TestNewAvailability(t *testing.T) {
	t.Run("remaining_is_initial_minus_consumed", func(t *testing.T) {
		a := stock.NewAvailability(30, 12.5)

		assert.InDelta(t, 30.0, a.Initial, 0)
		assert.InDelta(t, 12.5, a.Consumed, 0)
		assert.InDelta(t, 17.5, a.Remaining, 0)
	})

	t.Run("negative_remaining_is_surfaced_not_clamped", func(t *testing.T) {
		a := stock.NewAvailability(10, 12)
		assert.InDelta(t, -2.0, a.Remaining, 0)
	})
}
