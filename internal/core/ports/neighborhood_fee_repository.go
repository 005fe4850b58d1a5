package ports

import (
	"context"

	"frangodahora/internal/core/domain/model/neighborhood"
)

// NeighborhoodFeeRepository defines the persistence contract for the
// delivery-fee table.
type NeighborhoodFeeRepository interface {
	// Upsert records a neighborhood's delivery fee, keyed by name.
	Upsert(ctx context.Context, fee *neighborhood.Fee) error

	// GetByName retrieves a neighborhood's fee entry. Returns an
	// ObjectNotFoundError for unknown neighborhoods.
	GetByName(ctx context.Context, name string) (*neighborhood.Fee, error)

	// GetAll retrieves every known neighborhood, ordered by name.
	GetAll(ctx context.Context) ([]*neighborhood.Fee, error)
}
