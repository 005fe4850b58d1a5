package queries

import (
	"errors"

	"frangodahora/internal/pkg/guard"
)

var ErrGetEstablishmentsQueryIsNotConstructed = errors.New(
	"GetEstablishmentsQuery must be created via NewGetEstablishmentsQuery constructor",
)

// GetEstablishmentsQuery lists every registered establishment. The developer
// token is never included in the response.
type GetEstablishmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEstablishmentsQuery creates a query for the establishment register.
func NewGetEstablishmentsQuery() GetEstablishmentsQuery {
	return GetEstablishmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEstablishmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetEstablishmentsQueryIsNotConstructed)
}

// GetEstablishmentsQueryResponse is one establishment registration.
type GetEstablishmentsQueryResponse struct {
	ID               int64  `json:"id"`
	RemoteID         int64  `json:"remote_id"`
	Name             string `json:"name"`
	Active           bool   `json:"active"`
	AutoCloseStore   bool   `json:"auto_close_store"`
	AutoRejectOrders bool   `json:"auto_reject_orders"`
}
