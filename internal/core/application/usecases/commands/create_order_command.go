package commands

import (
	"errors"
	"time"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrChannelIsNotManual = errors.New("manual intake accepts only walk-in and phone orders")
)

// CreateOrderCommand represents a manually entered order: a customer at the
// counter or on the phone. Marketplace orders never come through here; they
// arrive via ImportMarketplaceOrderCommand.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	day      kernel.Day
	placedAt time.Time
	channel  order.Channel
	details  order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to take a manual order. The details
// are validated structurally here; the stock admission check happens inside
// the handler's transaction.
func NewCreateOrderCommand(
	day kernel.Day,
	placedAt time.Time,
	channel order.Channel,
	details order.Details,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		placedAt: placedAt,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setDay(day),
		orderCommand.setChannel(channel),
		orderCommand.setDetails(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Day returns the business day the order consumes stock from.
func (c CreateOrderCommand) Day() kernel.Day {
	return c.day
}

// PlacedAt returns the moment the order was taken.
func (c CreateOrderCommand) PlacedAt() time.Time {
	return c.placedAt
}

// Channel returns the sales channel.
func (c CreateOrderCommand) Channel() order.Channel {
	return c.channel
}

// Details returns the order attributes.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setDay(day kernel.Day) error {
	if err := day.Validate(); err != nil {
		return err
	}

	c.day = day
	return nil
}

func (c *CreateOrderCommand) setChannel(channel order.Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	if channel == order.ChannelMarketplace {
		return ErrChannelIsNotManual
	}

	c.channel = channel
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if err := details.Quantity.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
