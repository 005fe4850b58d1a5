package commands

import (
	"errors"

	"frangodahora/internal/pkg/guard"
)

var (
	ErrPushDeliveryTimeCommandIsNotConstructed = errors.New(
		"PushDeliveryTimeCommand must be created via NewPushDeliveryTimeCommand constructor",
	)
	ErrDeliveryMinutesIsInvalid = errors.New("delivery minutes must be greater than 0")
)

// PushDeliveryTimeCommand propagates a new expected preparation time to
// every active establishment on the marketplace.
type PushDeliveryTimeCommand struct { //nolint:recvcheck //using for validation
	minutes int

	guard guard.ConstructorGuard
}

// NewPushDeliveryTimeCommand creates a command to push a preparation time.
func NewPushDeliveryTimeCommand(minutes int) (PushDeliveryTimeCommand, error) {
	pushCommand := PushDeliveryTimeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := pushCommand.setMinutes(minutes); err != nil {
		return PushDeliveryTimeCommand{}, err
	}

	return pushCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PushDeliveryTimeCommand) Validate() error {
	return c.guard.Validate(ErrPushDeliveryTimeCommandIsNotConstructed)
}

// Minutes returns the expected preparation time.
func (c PushDeliveryTimeCommand) Minutes() int {
	return c.minutes
}

func (c *PushDeliveryTimeCommand) setMinutes(minutes int) error {
	if minutes <= 0 {
		return ErrDeliveryMinutesIsInvalid
	}

	c.minutes = minutes
	return nil
}
