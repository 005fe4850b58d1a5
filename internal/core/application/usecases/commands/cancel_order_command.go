package commands

import (
	"errors"

	"frangodahora/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels a local order. Cancelling releases the order's
// stock and clears any rider assignment. Imported orders still awaiting a
// decision go through RejectMarketplaceOrderCommand instead, so the
// marketplace learns about the rejection.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID int64) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *CancelOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
