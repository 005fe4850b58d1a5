package commands

import (
	"errors"

	"frangodahora/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand marks an order as handed to the customer: an in-route
// order delivered by its rider, or a pending pickup collected at the counter.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to complete an order.
func NewDeliverOrderCommand(orderID int64) (DeliverOrderCommand, error) {
	deliverCommand := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliverCommand.setOrderID(orderID); err != nil {
		return DeliverOrderCommand{}, err
	}

	return deliverCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the order to complete.
func (c DeliverOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *DeliverOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
