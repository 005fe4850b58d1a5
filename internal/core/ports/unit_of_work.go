package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the transaction.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// StockRepository returns a StockRepository bound to the current transaction.
	StockRepository() StockRepository

	// RiderRepository returns a RiderRepository bound to the current transaction.
	RiderRepository() RiderRepository

	// EstablishmentRepository returns an EstablishmentRepository bound to the
	// current transaction.
	EstablishmentRepository() EstablishmentRepository

	// NeighborhoodFeeRepository returns a NeighborhoodFeeRepository bound to
	// the current transaction.
	NeighborhoodFeeRepository() NeighborhoodFeeRepository
}
