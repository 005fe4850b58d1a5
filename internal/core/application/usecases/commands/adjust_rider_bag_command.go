package commands

import (
	"errors"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/pkg/guard"
)

var (
	ErrAdjustRiderBagCommandIsNotConstructed = errors.New(
		"AdjustRiderBagCommand must be created via NewAdjustRiderBagCommand constructor",
	)
	ErrRiderNameIsRequired = errors.New("rider name is required")
	ErrBagDeltaIsZero      = errors.New("bag adjustment must not be zero")
)

// AdjustRiderBagCommand changes how much of the day's stock a rider carries.
// Riders are addressed by name and registered on first use: handing three
// units to a new face at the counter is a single operation.
type AdjustRiderBagCommand struct { //nolint:recvcheck //using for validation
	riderName string
	day       kernel.Day
	delta     float64

	guard guard.ConstructorGuard
}

// NewAdjustRiderBagCommand creates a command to adjust a rider's bag. A
// positive delta hands units to the rider, a negative one takes them back.
func NewAdjustRiderBagCommand(riderName string, day kernel.Day, delta float64) (AdjustRiderBagCommand, error) {
	bagCommand := AdjustRiderBagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bagCommand.setRiderName(riderName),
		bagCommand.setDay(day),
		bagCommand.setDelta(delta),
	); err != nil {
		return AdjustRiderBagCommand{}, err
	}

	return bagCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustRiderBagCommand) Validate() error {
	return c.guard.Validate(ErrAdjustRiderBagCommandIsNotConstructed)
}

// RiderName returns the rider's unique name.
func (c AdjustRiderBagCommand) RiderName() string {
	return c.riderName
}

// Day returns the business day of the allotment.
func (c AdjustRiderBagCommand) Day() kernel.Day {
	return c.day
}

// Delta returns the signed quantity change.
func (c AdjustRiderBagCommand) Delta() float64 {
	return c.delta
}

func (c *AdjustRiderBagCommand) setRiderName(riderName string) error {
	if riderName == "" {
		return ErrRiderNameIsRequired
	}

	c.riderName = riderName
	return nil
}

func (c *AdjustRiderBagCommand) setDay(day kernel.Day) error {
	if err := day.Validate(); err != nil {
		return err
	}

	c.day = day
	return nil
}

func (c *AdjustRiderBagCommand) setDelta(delta float64) error {
	if delta == 0 {
		return ErrBagDeltaIsZero
	}

	c.delta = delta
	return nil
}
