package commands

import (
	"errors"
	"time"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/pkg/guard"
)

var (
	ErrImportMarketplaceOrderCommandIsNotConstructed = errors.New(
		"ImportMarketplaceOrderCommand must be created via NewImportMarketplaceOrderCommand constructor",
	)
	ErrExternalIDIsInvalid = errors.New("external order code must be greater than 0")
)

// ImportMarketplaceOrderCommand stores one marketplace order locally. The
// external order code makes the operation idempotent: importing the same code
// twice changes nothing and reports a duplicate.
type ImportMarketplaceOrderCommand struct { //nolint:recvcheck //using for validation
	externalID            int64
	remoteEstablishmentID int64
	day                   kernel.Day
	placedAt              time.Time
	details               order.Details

	guard guard.ConstructorGuard
}

// NewImportMarketplaceOrderCommand creates a command to import one remote
// order. The details are the already-translated local attributes.
func NewImportMarketplaceOrderCommand(
	externalID int64,
	remoteEstablishmentID int64,
	day kernel.Day,
	placedAt time.Time,
	details order.Details,
) (ImportMarketplaceOrderCommand, error) {
	importCommand := ImportMarketplaceOrderCommand{
		remoteEstablishmentID: remoteEstablishmentID,
		placedAt:              placedAt,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		importCommand.setExternalID(externalID),
		importCommand.setDay(day),
		importCommand.setDetails(details),
	); err != nil {
		return ImportMarketplaceOrderCommand{}, err
	}

	return importCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportMarketplaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrImportMarketplaceOrderCommandIsNotConstructed)
}

// ExternalID returns the marketplace order code.
func (c ImportMarketplaceOrderCommand) ExternalID() int64 {
	return c.externalID
}

// RemoteEstablishmentID returns the marketplace establishment the order came from.
func (c ImportMarketplaceOrderCommand) RemoteEstablishmentID() int64 {
	return c.remoteEstablishmentID
}

// Day returns the business day the order consumes stock from.
func (c ImportMarketplaceOrderCommand) Day() kernel.Day {
	return c.day
}

// PlacedAt returns the moment the order was fetched.
func (c ImportMarketplaceOrderCommand) PlacedAt() time.Time {
	return c.placedAt
}

// Details returns the translated order attributes.
func (c ImportMarketplaceOrderCommand) Details() order.Details {
	return c.details
}

func (c *ImportMarketplaceOrderCommand) setExternalID(externalID int64) error {
	if externalID <= 0 {
		return ErrExternalIDIsInvalid
	}

	c.externalID = externalID
	return nil
}

func (c *ImportMarketplaceOrderCommand) setDay(day kernel.Day) error {
	if err := day.Validate(); err != nil {
		return err
	}

	c.day = day
	return nil
}

func (c *ImportMarketplaceOrderCommand) setDetails(details order.Details) error {
	if err := details.Quantity.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
