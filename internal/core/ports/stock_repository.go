package ports

import (
	"context"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for daily stock entries.
type StockRepository interface {
	// Upsert records the initial quantity for a day, replacing any earlier
	// entry for the same day.
	Upsert(ctx context.Context, entry *stock.StockDay) error

	// Get retrieves the day's entry. A day without an entry yields a zero
	// initial quantity, not an error.
	Get(ctx context.Context, day kernel.Day) (*stock.StockDay, error)

	// GetForUpdate retrieves the day's entry with a row lock, creating a
	// zero entry first when the day has none. Holding the lock until the
	// transaction ends serializes every admission check for that day.
	GetForUpdate(ctx context.Context, day kernel.Day) (*stock.StockDay, error)
}
