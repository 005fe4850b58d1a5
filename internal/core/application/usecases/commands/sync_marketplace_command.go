package commands

import (
	"errors"

	"frangodahora/internal/pkg/guard"
)

var ErrSyncMarketplaceCommandIsNotConstructed = errors.New(
	"SyncMarketplaceCommand must be created via NewSyncMarketplaceCommand constructor",
)

// SyncMarketplaceCommand runs one polling cycle against the marketplace.
// The cycle works on the current business day; it carries no parameters.
type SyncMarketplaceCommand struct {
	guard guard.ConstructorGuard
}

// NewSyncMarketplaceCommand creates a command to run one polling cycle.
func NewSyncMarketplaceCommand() SyncMarketplaceCommand {
	return SyncMarketplaceCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SyncMarketplaceCommand) Validate() error {
	return c.guard.Validate(ErrSyncMarketplaceCommandIsNotConstructed)
}
