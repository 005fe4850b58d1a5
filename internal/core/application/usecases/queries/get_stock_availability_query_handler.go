package queries

import (
	"context"

	"frangodahora/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStockAvailabilityQueryHandler derives a day's availability in a single
// statement, so initial and consumed come from one consistent snapshot.
type GetStockAvailabilityQueryHandler struct {
	db *gorm.DB
}

// NewGetStockAvailabilityQueryHandler creates a handler for availability reads.
func NewGetStockAvailabilityQueryHandler(db *gorm.DB) GetStockAvailabilityQueryHandler {
	return GetStockAvailabilityQueryHandler{db: db}
}

// Handle computes initial, consumed, and remaining for the day. A day
// without a stock entry reports zero initial; cancelled orders never count
// as consumption.
func (h GetStockAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query GetStockAvailabilityQuery,
) (GetStockAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockAvailabilityQueryResponse{}, err
	}

	day := query.Day().Time()
	resp := GetStockAvailabilityQueryResponse{Day: query.Day().String()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE((SELECT initial FROM stock_days WHERE day = ?), 0) AS initial,
			COALESCE((SELECT SUM(quantity) FROM orders WHERE day = ? AND status != ?), 0) AS consumed
	`, day, day, order.StatusCancelled).Row()

	if err := row.Scan(&resp.Initial, &resp.Consumed); err != nil {
		return GetStockAvailabilityQueryResponse{}, err
	}

	resp.Remaining = resp.Initial - resp.Consumed
	return resp, nil
}
