package commands

import (
	"errors"

	"frangodahora/internal/pkg/guard"
)

var (
	ErrRegisterEstablishmentCommandIsNotConstructed = errors.New(
		"RegisterEstablishmentCommand must be created via NewRegisterEstablishmentCommand constructor",
	)
	ErrRemoteEstablishmentIDIsInvalid = errors.New("remote establishment id must be greater than 0")
	ErrEstablishmentIDIsInvalid       = errors.New("establishment id must be greater than 0")
	ErrDeveloperTokenIsRequired       = errors.New("developer token is required")
	ErrEstablishmentNameIsRequired    = errors.New("establishment name is required")
)

// RegisterEstablishmentCommand registers a marketplace storefront so the
// sync engine starts polling it.
type RegisterEstablishmentCommand struct { //nolint:recvcheck //using for validation
	remoteID       int64
	developerToken string
	name           string

	guard guard.ConstructorGuard
}

// NewRegisterEstablishmentCommand creates a command to register an establishment.
func NewRegisterEstablishmentCommand(remoteID int64, developerToken, name string) (RegisterEstablishmentCommand, error) {
	registerCommand := RegisterEstablishmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setRemoteID(remoteID),
		registerCommand.setDeveloperToken(developerToken),
		registerCommand.setName(name),
	); err != nil {
		return RegisterEstablishmentCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterEstablishmentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterEstablishmentCommandIsNotConstructed)
}

// RemoteID returns the marketplace's id for the establishment.
func (c RegisterEstablishmentCommand) RemoteID() int64 {
	return c.remoteID
}

// DeveloperToken returns the credential used to authenticate.
func (c RegisterEstablishmentCommand) DeveloperToken() string {
	return c.developerToken
}

// Name returns the display name.
func (c RegisterEstablishmentCommand) Name() string {
	return c.name
}

func (c *RegisterEstablishmentCommand) setRemoteID(remoteID int64) error {
	if remoteID <= 0 {
		return ErrRemoteEstablishmentIDIsInvalid
	}

	c.remoteID = remoteID
	return nil
}

func (c *RegisterEstablishmentCommand) setDeveloperToken(developerToken string) error {
	if developerToken == "" {
		return ErrDeveloperTokenIsRequired
	}

	c.developerToken = developerToken
	return nil
}

func (c *RegisterEstablishmentCommand) setName(name string) error {
	if name == "" {
		return ErrEstablishmentNameIsRequired
	}

	c.name = name
	return nil
}
