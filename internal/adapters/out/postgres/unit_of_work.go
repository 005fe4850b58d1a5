// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: repositories obtained
// from it share the same database transaction, and the whole set of changes is
// committed or rolled back together.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation gets its own unit of work instance; instances are
// not safe for concurrent use. Row locks taken through the repositories
// (stock day, rider) are held until the transaction ends, which is what
// serializes admission checks and route mutations.
package postgres

import (
	"context"

	"frangodahora/internal/adapters/out/postgres/establishmentrepo"
	"frangodahora/internal/adapters/out/postgres/neighborhoodrepo"
	"frangodahora/internal/adapters/out/postgres/orderrepo"
	"frangodahora/internal/adapters/out/postgres/riderrepo"
	"frangodahora/internal/adapters/out/postgres/stockrepo"
	"frangodahora/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// database handle. The factory ensures each business operation gets a fresh
// unit of work with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by every instance.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]any, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the repositories.
// It also tracks every aggregate the repositories persist during the
// transaction, so callers can process them after a successful commit.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []any
}

// Begin initiates the database transaction. Subsequent repository operations
// execute within it. Calling Begin again on an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the active transaction, or the bare connection when no
// transaction was begun.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// StockRepository returns a stock repository bound to the current transaction.
func (uow *GormUnitOfWork) StockRepository() ports.StockRepository {
	return stockrepo.NewGormStockRepository(uow.conn(), uow)
}

// RiderRepository returns a rider repository bound to the current transaction.
func (uow *GormUnitOfWork) RiderRepository() ports.RiderRepository {
	return riderrepo.NewGormRiderRepository(uow.conn(), uow)
}

// EstablishmentRepository returns an establishment repository bound to the
// current transaction.
func (uow *GormUnitOfWork) EstablishmentRepository() ports.EstablishmentRepository {
	return establishmentrepo.NewGormEstablishmentRepository(uow.conn(), uow)
}

// NeighborhoodFeeRepository returns a delivery-fee repository bound to the
// current transaction.
func (uow *GormUnitOfWork) NeighborhoodFeeRepository() ports.NeighborhoodFeeRepository {
	return neighborhoodrepo.NewGormNeighborhoodFeeRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as persisted within this unit
// of work. Repository implementations call it on every successful write.
func (uow *GormUnitOfWork) TrackAggregate(aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

// TrackedAggregates returns every aggregate persisted through this unit of
// work, in write order.
func (uow *GormUnitOfWork) TrackedAggregates() []any {
	return uow.trackedAggregates
}
