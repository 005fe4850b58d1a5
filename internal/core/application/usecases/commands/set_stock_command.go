package commands

import (
	"errors"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/pkg/guard"
)

var (
	ErrSetStockCommandIsNotConstructed = errors.New(
		"SetStockCommand must be created via NewSetStockCommand constructor",
	)
	ErrStockQuantityIsInvalid = errors.New("stock quantity must not be negative")
)

// SetStockCommand records the initial staple quantity prepared for one
// business day. Setting a day that already has an entry replaces it.
type SetStockCommand struct { //nolint:recvcheck //using for validation
	day      kernel.Day
	quantity float64

	guard guard.ConstructorGuard
}

// NewSetStockCommand creates a command to record a day's initial stock.
// Zero is valid and means nothing was prepared.
func NewSetStockCommand(day kernel.Day, quantity float64) (SetStockCommand, error) {
	stockCommand := SetStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stockCommand.setDay(day),
		stockCommand.setQuantity(quantity),
	); err != nil {
		return SetStockCommand{}, err
	}

	return stockCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetStockCommand) Validate() error {
	return c.guard.Validate(ErrSetStockCommandIsNotConstructed)
}

// Day returns the business day the entry applies to.
func (c SetStockCommand) Day() kernel.Day {
	return c.day
}

// Quantity returns the initial quantity prepared for the day.
func (c SetStockCommand) Quantity() float64 {
	return c.quantity
}

func (c *SetStockCommand) setDay(day kernel.Day) error {
	if err := day.Validate(); err != nil {
		return err
	}

	c.day = day
	return nil
}

func (c *SetStockCommand) setQuantity(quantity float64) error {
	if quantity < 0 {
		return ErrStockQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
