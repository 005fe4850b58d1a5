package queries

import (
	"context"

	"frangodahora/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersByDayQueryHandler lists a day's orders ranked the way the
// operator works the board: decisions and dispatch first, finished work
// last, newest first within each rank.
type GetOrdersByDayQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByDayQueryHandler creates a handler for the day board query.
func NewGetOrdersByDayQueryHandler(db *gorm.DB) GetOrdersByDayQueryHandler {
	return GetOrdersByDayQueryHandler{db: db}
}

// Handle executes the board query.
func (h GetOrdersByDayQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByDayQuery,
) ([]GetOrdersByDayQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetOrdersByDayQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, external_id, placed_at, channel, status,
			customer_name, customer_phone, address, neighborhood,
			quantity, chopped, delivery_fee, total_price,
			payment_method, notes, expected_minutes,
			rider_id, route_position
		FROM orders
		WHERE day = ?
		ORDER BY
			CASE status
				WHEN ? THEN 0
				WHEN ? THEN 0
				WHEN ? THEN 1
				WHEN ? THEN 2
				ELSE 3
			END,
			placed_at DESC
	`, query.Day().Time(),
		order.StatusAwaitingMarketplace, order.StatusPending,
		order.StatusInRoute, order.StatusDelivered,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersByDayQueryResponse
		var channel order.Channel
		var status order.Status
		var paymentMethod order.PaymentMethod

		err = rows.Scan(
			&resp.ID,
			&resp.ExternalID,
			&resp.PlacedAt,
			&channel,
			&status,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.Address,
			&resp.Neighborhood,
			&resp.Quantity,
			&resp.Chopped,
			&resp.DeliveryFee,
			&resp.TotalPrice,
			&paymentMethod,
			&resp.Notes,
			&resp.ExpectedMinutes,
			&resp.RiderID,
			&resp.RoutePosition,
		)
		if err != nil {
			return nil, err
		}

		resp.Channel = channel.String()
		resp.Status = status.String()
		resp.PaymentMethod = paymentMethod.String()
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
