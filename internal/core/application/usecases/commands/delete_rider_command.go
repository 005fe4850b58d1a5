package commands

import (
	"errors"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/pkg/guard"
)

var (
	ErrDeleteRiderCommandIsNotConstructed = errors.New(
		"DeleteRiderCommand must be created via NewDeleteRiderCommand constructor",
	)
	ErrRiderHasOrdersInRoute = errors.New("rider has orders in route and cannot be deleted")
)

// DeleteRiderCommand removes a rider from the register.
type DeleteRiderCommand struct { //nolint:recvcheck //using for validation
	riderID int64
	day     kernel.Day

	guard guard.ConstructorGuard
}

// NewDeleteRiderCommand creates a command to delete a rider. The day is used
// to verify the rider has no route in progress.
func NewDeleteRiderCommand(riderID int64, day kernel.Day) (DeleteRiderCommand, error) {
	deleteCommand := DeleteRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deleteCommand.setRiderID(riderID),
		deleteCommand.setDay(day),
	); err != nil {
		return DeleteRiderCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRiderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRiderCommandIsNotConstructed)
}

// RiderID returns the rider to delete.
func (c DeleteRiderCommand) RiderID() int64 {
	return c.riderID
}

// Day returns the business day checked for an in-progress route.
func (c DeleteRiderCommand) Day() kernel.Day {
	return c.day
}

func (c *DeleteRiderCommand) setRiderID(riderID int64) error {
	if riderID <= 0 {
		return ErrRiderIDIsInvalid
	}

	c.riderID = riderID
	return nil
}

func (c *DeleteRiderCommand) setDay(day kernel.Day) error {
	if err := day.Validate(); err != nil {
		return err
	}

	c.day = day
	return nil
}
