package queries

import (
	"context"
	"database/sql"
	"errors"

	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order row.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fetches the order, or an ObjectNotFoundError when the id is unknown.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrdersByDayQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersByDayQueryResponse{}, err
	}

	var resp GetOrdersByDayQueryResponse
	var channel order.Channel
	var status order.Status
	var paymentMethod order.PaymentMethod

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, external_id, placed_at, channel, status,
			customer_name, customer_phone, address, neighborhood,
			quantity, chopped, delivery_fee, total_price,
			payment_method, notes, expected_minutes,
			rider_id, route_position
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
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
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrdersByDayQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrdersByDayQueryResponse{}, err
	}

	resp.Channel = channel.String()
	resp.Status = status.String()
	resp.PaymentMethod = paymentMethod.String()
	return resp, nil
}
