package ports

import (
	"context"

	"frangodahora/internal/core/domain/model/establishment"
)

// EstablishmentRepository defines the persistence contract for marketplace
// establishment registrations.
type EstablishmentRepository interface {
	// Add persists a new establishment and attaches the generated id.
	Add(ctx context.Context, aggregate *establishment.Establishment) error

	// Update persists changes to an existing establishment.
	Update(ctx context.Context, aggregate *establishment.Establishment) error

	// Get retrieves an establishment by its local id.
	Get(ctx context.Context, id int64) (*establishment.Establishment, error)

	// GetByRemoteID retrieves an establishment by the marketplace's id for it.
	GetByRemoteID(ctx context.Context, remoteID int64) (*establishment.Establishment, error)

	// GetAll retrieves every registered establishment.
	GetAll(ctx context.Context) ([]*establishment.Establishment, error)

	// GetAllActive retrieves the establishments the sync engine polls.
	GetAllActive(ctx context.Context) ([]*establishment.Establishment, error)

	// Delete removes an establishment registration.
	Delete(ctx context.Context, id int64) error
}
