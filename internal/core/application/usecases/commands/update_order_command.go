package commands

import (
	"errors"

	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces the attributes of a non-terminal order.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	details order.Details

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an order.
func NewUpdateOrderCommand(orderID int64, details order.Details) (UpdateOrderCommand, error) {
	updateCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setDetails(details),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Details returns the replacement attributes.
func (c UpdateOrderCommand) Details() order.Details {
	return c.details
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setDetails(details order.Details) error {
	if err := details.Quantity.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
