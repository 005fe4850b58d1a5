package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testDay(t *testing.T) kernel.Day {
	t.Helper()
	return kernel.NewDay(time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC))
}

func testQuantity(t *testing.T, units float64) kernel.Quantity {
	t.Helper()
	q, err := kernel.QuantityFromUnits(units)
	require.NoError(t, err)
	return q
}

func testDetails(t *testing.T, units float64) order.Details {
	t.Helper()
	return order.Details{
		Customer:     order.Customer{Name: "Maria", Phone: "34999990000"},
		Address:      "Rua das Laranjeiras, 45",
		Neighborhood: "Centro",
		Quantity:     testQuantity(t, units),
		Pricing: order.Pricing{
			UnitPrice:   decimal.NewFromFloat(65),
			DeliveryFee: decimal.NewFromFloat(7),
			TotalPrice:  decimal.NewFromFloat(72),
		},
		PaymentMethod: order.PaymentCash,
	}
}

func testPickupDetails(t *testing.T, units float64) order.Details {
	t.Helper()
	details := testDetails(t, units)
	details.Address = order.PickupAddress
	details.Neighborhood = ""
	details.Pricing.DeliveryFee = decimal.Zero
	details.Pricing.TotalPrice = decimal.NewFromFloat(65)
	return details
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
