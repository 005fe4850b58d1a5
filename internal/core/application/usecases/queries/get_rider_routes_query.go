package queries

import (
	"errors"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/pkg/guard"
)

var ErrGetRiderRoutesQueryIsNotConstructed = errors.New(
	"GetRiderRoutesQuery must be created via NewGetRiderRoutesQuery constructor",
)

// GetRiderRoutesQuery retrieves every rider with their bag allotment and
// in-route stops for one business day.
type GetRiderRoutesQuery struct {
	day kernel.Day

	guard guard.ConstructorGuard
}

// NewGetRiderRoutesQuery creates a query for the day's rider routes.
func NewGetRiderRoutesQuery(day kernel.Day) (GetRiderRoutesQuery, error) {
	if err := day.Validate(); err != nil {
		return GetRiderRoutesQuery{}, err
	}

	return GetRiderRoutesQuery{
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderRoutesQueryIsNotConstructed)
}

// Day returns the day being listed.
func (q GetRiderRoutesQuery) Day() kernel.Day {
	return q.day
}

// RouteStopResponse is one stop of a rider's route.
type RouteStopResponse struct {
	OrderID       int64   `json:"order_id"`
	RoutePosition int     `json:"route_position"`
	Address       string  `json:"address"`
	Neighborhood  string  `json:"neighborhood,omitempty"`
	Quantity      float64 `json:"quantity"`
	CustomerName  string  `json:"customer_name"`
}

// GetRiderRoutesQueryResponse is one rider's day: their bag and their route.
type GetRiderRoutesQueryResponse struct {
	RiderID int64               `json:"rider_id"`
	Name    string              `json:"name"`
	Bag     float64             `json:"bag"`
	Route   []RouteStopResponse `json:"route"`
}
