package queries

import (
	"errors"
	"time"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/pkg/guard"
)

var ErrGetOrdersByDayQueryIsNotConstructed = errors.New(
	"GetOrdersByDayQuery must be created via NewGetOrdersByDayQuery constructor",
)

// GetOrdersByDayQuery retrieves the operator's board for one business day.
type GetOrdersByDayQuery struct {
	day kernel.Day

	guard guard.ConstructorGuard
}

// NewGetOrdersByDayQuery creates a query for one day's orders.
func NewGetOrdersByDayQuery(day kernel.Day) (GetOrdersByDayQuery, error) {
	if err := day.Validate(); err != nil {
		return GetOrdersByDayQuery{}, err
	}

	return GetOrdersByDayQuery{
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByDayQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByDayQueryIsNotConstructed)
}

// Day returns the day being listed.
func (q GetOrdersByDayQuery) Day() kernel.Day {
	return q.day
}

// GetOrdersByDayQueryResponse is one row of the operator's board.
type GetOrdersByDayQueryResponse struct {
	ID              int64     `json:"id"`
	ExternalID      *int64    `json:"external_id,omitempty"`
	PlacedAt        time.Time `json:"placed_at"`
	Channel         string    `json:"channel"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	Address         string    `json:"address"`
	Neighborhood    string    `json:"neighborhood,omitempty"`
	Quantity        float64   `json:"quantity"`
	Chopped         bool      `json:"chopped"`
	DeliveryFee     float64   `json:"delivery_fee"`
	TotalPrice      float64   `json:"total_price"`
	PaymentMethod   string    `json:"payment_method"`
	Notes           string    `json:"notes,omitempty"`
	ExpectedMinutes int       `json:"expected_minutes,omitempty"`
	RiderID         *int64    `json:"rider_id,omitempty"`
	RoutePosition   int       `json:"route_position,omitempty"`
}
