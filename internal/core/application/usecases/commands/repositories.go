// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"frangodahora/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// RiderRepoFactory provides access to the rider repository within a transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// EstablishmentRepoFactory provides access to the establishment repository
	// within a transaction.
	EstablishmentRepoFactory interface {
		EstablishmentRepository() ports.EstablishmentRepository
	}

	// NeighborhoodFeeRepoFactory provides access to the delivery-fee table
	// within a transaction.
	NeighborhoodFeeRepoFactory interface {
		NeighborhoodFeeRepository() ports.NeighborhoodFeeRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StockUoW manages transactions for stock-only operations.
	StockUoW interface {
		TxManager
		StockRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// IntakeUoW manages transactions for order admission: the stock lock, the
	// order insert, and the delivery-fee auto-registration happen atomically.
	IntakeUoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
		NeighborhoodFeeRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// DispatchUoW manages transactions touching orders and riders: route
	// assignment and reordering under the rider's lock.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		RiderRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// BagUoW manages transactions for rider bag allotments, which read stock
	// and orders while mutating the rider's daily assignment.
	BagUoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
		RiderRepoFactory
	}

	// BagUoWFactory creates new bag unit of work instances.
	BagUoWFactory interface {
		Create() BagUoW
	}

	// DecisionUoW manages transactions for accept/reject decisions on
	// imported marketplace orders, which read the owning establishment's
	// credentials while mutating the order.
	DecisionUoW interface {
		TxManager
		OrderRepoFactory
		EstablishmentRepoFactory
	}

	// DecisionUoWFactory creates new decision unit of work instances.
	DecisionUoWFactory interface {
		Create() DecisionUoW
	}

	// SyncUoW manages the read snapshot a polling cycle starts from: the
	// day's stock, its consumption, and the establishments to poll.
	SyncUoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
		EstablishmentRepoFactory
	}

	// SyncUoWFactory creates new sync unit of work instances.
	SyncUoWFactory interface {
		Create() SyncUoW
	}

	// EstablishmentUoW manages transactions for establishment registrations.
	EstablishmentUoW interface {
		TxManager
		EstablishmentRepoFactory
	}

	// EstablishmentUoWFactory creates new establishment unit of work instances.
	EstablishmentUoWFactory interface {
		Create() EstablishmentUoW
	}
)
