package commands

import (
	"errors"

	"frangodahora/internal/pkg/guard"
)

var (
	ErrAcceptMarketplaceOrderCommandIsNotConstructed = errors.New(
		"AcceptMarketplaceOrderCommand must be created via NewAcceptMarketplaceOrderCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// AcceptMarketplaceOrderCommand confirms an imported marketplace order, both
// remotely and locally.
type AcceptMarketplaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewAcceptMarketplaceOrderCommand creates a command to accept an imported order.
func NewAcceptMarketplaceOrderCommand(orderID int64) (AcceptMarketplaceOrderCommand, error) {
	acceptCommand := AcceptMarketplaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := acceptCommand.setOrderID(orderID); err != nil {
		return AcceptMarketplaceOrderCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptMarketplaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptMarketplaceOrderCommandIsNotConstructed)
}

// OrderID returns the local id of the order to accept.
func (c AcceptMarketplaceOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *AcceptMarketplaceOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
