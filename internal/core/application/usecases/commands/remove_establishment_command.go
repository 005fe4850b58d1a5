package commands

import (
	"errors"

	"frangodahora/internal/pkg/guard"
)

var ErrRemoveEstablishmentCommandIsNotConstructed = errors.New(
	"RemoveEstablishmentCommand must be created via NewRemoveEstablishmentCommand constructor",
)

// RemoveEstablishmentCommand deletes an establishment registration. Orders
// already imported from it are kept.
type RemoveEstablishmentCommand struct { //nolint:recvcheck //using for validation
	establishmentID int64

	guard guard.ConstructorGuard
}

// NewRemoveEstablishmentCommand creates a command to remove an establishment.
func NewRemoveEstablishmentCommand(establishmentID int64) (RemoveEstablishmentCommand, error) {
	removeCommand := RemoveEstablishmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setEstablishmentID(establishmentID); err != nil {
		return RemoveEstablishmentCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveEstablishmentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveEstablishmentCommandIsNotConstructed)
}

// EstablishmentID returns the establishment to remove.
func (c RemoveEstablishmentCommand) EstablishmentID() int64 {
	return c.establishmentID
}

func (c *RemoveEstablishmentCommand) setEstablishmentID(establishmentID int64) error {
	if establishmentID <= 0 {
		return ErrEstablishmentIDIsInvalid
	}

	c.establishmentID = establishmentID
	return nil
}
