// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories bound to the unit of work, the
// outbound marketplace client, the change notifier, and the task queue.
package ports

import (
	"context"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and attaches the generated id.
	Add(ctx context.Context, aggregate *order.Order) error

	// AddIfAbsent persists a marketplace order unless one with the same
	// external id already exists. Returns true when the order was inserted
	// and false when it was a duplicate; a duplicate is not an error.
	AddIfAbsent(ctx context.Context, aggregate *order.Order) (bool, error)

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its local identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllByDay retrieves every order of a business day, ranked for the
	// operator's board: pending and awaiting first, then in route, then
	// delivered, then cancelled, newest first within each rank.
	GetAllByDay(ctx context.Context, day kernel.Day) ([]*order.Order, error)

	// GetInRouteByRider retrieves a rider's in-route orders for a day,
	// ordered by route position.
	GetInRouteByRider(ctx context.Context, riderID int64, day kernel.Day) ([]*order.Order, error)

	// MaxRoutePosition returns the highest route position among a rider's
	// in-route orders for a day, zero when the route is empty. Callers must
	// hold the rider's lock when using the result to append.
	MaxRoutePosition(ctx context.Context, riderID int64, day kernel.Day) (int, error)

	// ConsumedQuantity sums the staple quantity of the day's non-cancelled
	// orders. This is the consumption side of the stock ledger.
	ConsumedQuantity(ctx context.Context, day kernel.Day) (float64, error)

	// ReservedForPickup sums the staple quantity of the day's non-cancelled
	// pickup orders. Pickups never ride in a bag, so this amount is held
	// back from rider allotments.
	ReservedForPickup(ctx context.Context, day kernel.Day) (float64, error)
}
