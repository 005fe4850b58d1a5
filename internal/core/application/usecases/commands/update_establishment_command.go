package commands

import (
	"errors"

	"frangodahora/internal/pkg/guard"
)

var ErrUpdateEstablishmentCommandIsNotConstructed = errors.New(
	"UpdateEstablishmentCommand must be created via NewUpdateEstablishmentCommand constructor",
)

// UpdateEstablishmentCommand changes an establishment's polling and
// automation flags.
type UpdateEstablishmentCommand struct { //nolint:recvcheck //using for validation
	establishmentID  int64
	active           bool
	autoCloseStore   bool
	autoRejectOrders bool

	guard guard.ConstructorGuard
}

// NewUpdateEstablishmentCommand creates a command to update an establishment's flags.
func NewUpdateEstablishmentCommand(
	establishmentID int64,
	active, autoCloseStore, autoRejectOrders bool,
) (UpdateEstablishmentCommand, error) {
	updateCommand := UpdateEstablishmentCommand{
		active:           active,
		autoCloseStore:   autoCloseStore,
		autoRejectOrders: autoRejectOrders,
		guard:            guard.NewConstructorGuard(),
	}

	if err := updateCommand.setEstablishmentID(establishmentID); err != nil {
		return UpdateEstablishmentCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateEstablishmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEstablishmentCommandIsNotConstructed)
}

// EstablishmentID returns the establishment to update.
func (c UpdateEstablishmentCommand) EstablishmentID() int64 {
	return c.establishmentID
}

// Active reports whether the sync engine should poll the establishment.
func (c UpdateEstablishmentCommand) Active() bool {
	return c.active
}

// AutoCloseStore reports whether the storefront toggle automation is on.
func (c UpdateEstablishmentCommand) AutoCloseStore() bool {
	return c.autoCloseStore
}

// AutoRejectOrders reports whether stock-based auto-rejection is on.
func (c UpdateEstablishmentCommand) AutoRejectOrders() bool {
	return c.autoRejectOrders
}

func (c *UpdateEstablishmentCommand) setEstablishmentID(establishmentID int64) error {
	if establishmentID <= 0 {
		return ErrEstablishmentIDIsInvalid
	}

	c.establishmentID = establishmentID
	return nil
}
