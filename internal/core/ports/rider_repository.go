package ports

import (
	"context"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for riders and their
// daily bag assignments.
type RiderRepository interface {
	// Add persists a new rider and attaches the generated id.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider by id.
	Get(ctx context.Context, id int64) (*rider.Rider, error)

	// GetForUpdate retrieves a rider by id with a row lock. Holding the
	// lock until the transaction ends serializes route mutations for that
	// rider.
	GetForUpdate(ctx context.Context, id int64) (*rider.Rider, error)

	// GetAll retrieves every registered rider, ordered by name.
	GetAll(ctx context.Context) ([]*rider.Rider, error)

	// FindByName retrieves a rider by their unique name. Returns an
	// ObjectNotFoundError when no rider carries the name.
	FindByName(ctx context.Context, name string) (*rider.Rider, error)

	// Delete removes a rider. Riders with in-route orders must not be
	// deleted; callers check before calling.
	Delete(ctx context.Context, id int64) error

	// GetAssignment retrieves a rider's bag assignment for a day. A day
	// without an assignment yields an empty bag, not an error.
	GetAssignment(ctx context.Context, riderID int64, day kernel.Day) (*rider.DailyAssignment, error)

	// SaveAssignment upserts a rider's bag assignment for its day.
	SaveAssignment(ctx context.Context, assignment *rider.DailyAssignment) error

	// TotalAllotted sums every rider's bag allotment for a day.
	TotalAllotted(ctx context.Context, day kernel.Day) (float64, error)
}
