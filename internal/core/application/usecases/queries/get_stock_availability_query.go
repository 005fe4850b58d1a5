// Package queries contains read operations over the datastore. Handlers run
// raw SQL for read performance and return flat response models; they never
// load aggregates.
package queries

import (
	"errors"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/pkg/guard"
)

var ErrGetStockAvailabilityQueryIsNotConstructed = errors.New(
	"GetStockAvailabilityQuery must be created via NewGetStockAvailabilityQuery constructor",
)

// GetStockAvailabilityQuery asks what remains of a day's stock.
type GetStockAvailabilityQuery struct {
	day kernel.Day

	guard guard.ConstructorGuard
}

// NewGetStockAvailabilityQuery creates a query for one day's availability.
func NewGetStockAvailabilityQuery(day kernel.Day) (GetStockAvailabilityQuery, error) {
	if err := day.Validate(); err != nil {
		return GetStockAvailabilityQuery{}, err
	}

	return GetStockAvailabilityQuery{
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetStockAvailabilityQueryIsNotConstructed)
}

// Day returns the day being asked about.
func (q GetStockAvailabilityQuery) Day() kernel.Day {
	return q.day
}

// GetStockAvailabilityQueryResponse is the ledger's answer for one day.
// Remaining may be negative when the day was overbooked.
type GetStockAvailabilityQueryResponse struct {
	Day       string  `json:"day"`
	Initial   float64 `json:"initial"`
	Consumed  float64 `json:"consumed"`
	Remaining float64 `json:"remaining"`
}
