package queries

import (
	"errors"

	"frangodahora/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// GetOrderQuery retrieves one order by its local id.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, ErrOrderIDIsInvalid
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order being asked about.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}
