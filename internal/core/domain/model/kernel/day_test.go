package kernel_test

import (
	"testing"
	"time"

	"frangodahora/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDay(t *testing.T) {
	t.Run("truncates_to_calendar_day", func(t *testing.T) {
		moment := time.Date(2024, 7, 15, 23, 48, 12, 0, time.Local)

		day := kernel.NewDay(moment)

		require.NoError(t, day.Validate())
		assert.Equal(t, "2024-07-15", day.String())
	})

	t.Run("same_day_different_times_are_equal", func(t *testing.T) {
		morning := kernel.NewDay(time.Date(2024, 7, 15, 1, 0, 0, 0, time.Local))
		evening := kernel.NewDay(time.Date(2024, 7, 15, 23, 59, 0, 0, time.Local))

		assert.True(t, morning.IsEqual(evening))
	})
}

func TestParseDay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		day, err := kernel.ParseDay("2024-01-31")

		require.NoError(t, err)
		assert.Equal(t, "2024-01-31", day.String())
	})

	t.Run("invalid", func(t *testing.T) {
		tests := []string{"", "31/01/2024", "2024-13-01", "yesterday"}
		for _, input := range tests {
			_, err := kernel.ParseDay(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestDay_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var day kernel.Day
		require.ErrorIs(t, day.Validate(), kernel.ErrDayIsNotConstructed)
	})
}
