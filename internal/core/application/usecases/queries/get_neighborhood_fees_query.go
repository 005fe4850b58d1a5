package queries

import (
	"errors"

	"frangodahora/internal/pkg/guard"
)

var ErrGetNeighborhoodFeesQueryIsNotConstructed = errors.New(
	"GetNeighborhoodFeesQuery must be created via NewGetNeighborhoodFeesQuery constructor",
)

// GetNeighborhoodFeesQuery lists the known neighborhoods and their delivery
// fees, used by the intake screen to pre-fill the fee.
type GetNeighborhoodFeesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNeighborhoodFeesQuery creates a query for the delivery-fee table.
func NewGetNeighborhoodFeesQuery() GetNeighborhoodFeesQuery {
	return GetNeighborhoodFeesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNeighborhoodFeesQuery) Validate() error {
	return q.guard.Validate(ErrGetNeighborhoodFeesQueryIsNotConstructed)
}

// GetNeighborhoodFeesQueryResponse is one neighborhood's fee entry.
type GetNeighborhoodFeesQueryResponse struct {
	Name string  `json:"name"`
	Fee  float64 `json:"fee"`
}
