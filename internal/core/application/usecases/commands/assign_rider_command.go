package commands

import (
	"errors"

	"frangodahora/internal/pkg/guard"
)

var (
	ErrAssignRiderCommandIsNotConstructed = errors.New(
		"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
	)
	ErrRiderIDIsInvalid = errors.New("rider id must be greater than 0")
)

// AssignRiderCommand puts a pending order at the end of a rider's route.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	riderID int64

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to assign an order to a rider.
func NewAssignRiderCommand(orderID, riderID int64) (AssignRiderCommand, error) {
	assignCommand := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setRiderID(riderID),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignRiderCommand) OrderID() int64 {
	return c.orderID
}

// RiderID returns the rider receiving the order.
func (c AssignRiderCommand) RiderID() int64 {
	return c.riderID
}

func (c *AssignRiderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID int64) error {
	if riderID <= 0 {
		return ErrRiderIDIsInvalid
	}

	c.riderID = riderID
	return nil
}
