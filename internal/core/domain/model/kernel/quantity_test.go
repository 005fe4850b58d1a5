package kernel_test

import (
	"testing"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	tests := []struct {
		name    string
		whole   int
		half    bool
		units   float64
		wantErr bool
	}{
		{name: "one_whole", whole: 1, half: false, units: 1},
		{name: "whole_and_half", whole: 2, half: true, units: 2.5},
		{name: "half_only", whole: 0, half: true, units: 0.5},
		{name: "zero_is_invalid", whole: 0, half: false, wantErr: true},
		{name: "negative_is_invalid", whole: -1, half: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := kernel.NewQuantity(tt.whole, tt.half)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}

			require.NoError(t, err)
			require.NoError(t, q.Validate())
			assert.Equal(t, tt.whole, q.Whole())
			assert.Equal(t, tt.half, q.Half())
			assert.InDelta(t, tt.units, q.Units(), 0)
		})
	}
}

func TestQuantityFromUnits(t *testing.T) {
	t.Run("whole_units", func(t *testing.T) {
		q, err := kernel.QuantityFromUnits(3)

		require.NoError(t, err)
		assert.Equal(t, 3, q.Whole())
		assert.False(t, q.Half())
	})

	t.Run("fractional_part_becomes_half_flag", func(t *testing.T) {
		q, err := kernel.QuantityFromUnits(2.5)

		require.NoError(t, err)
		assert.Equal(t, 2, q.Whole())
		assert.True(t, q.Half())
		assert.InDelta(t, 2.5, q.Units(), 0)
	})

	t.Run("non_positive_is_invalid", func(t *testing.T) {
		_, err := kernel.QuantityFromUnits(0)
		require.Error(t, err)

		_, err = kernel.QuantityFromUnits(-1.5)
		require.Error(t, err)
	})
}

func TestQuantity_String(t *testing.T) {
	q, _ := kernel.NewQuantity(2, true)
	assert.Equal(t, "2.5", q.String())

	q, _ = kernel.NewQuantity(4, false)
	assert.Equal(t, "4", q.String())
}

func TestQuantity_Validate(t *testing.T) {
	var q kernel.Quantity
	require.ErrorIs(t, q.Validate(), kernel.ErrQuantityIsNotConstructed)
}
