// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"checkout/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BuyerRepoFactory provides access to buyer repository within a transaction.
	BuyerRepoFactory interface {
		BuyerRepository() ports.BuyerRepository
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

	// BuyerUoW manages transactions for buyer-only operations.
	BuyerUoW interface {
		TxManager
		BuyerRepoFactory
	}

	// BuyerUoWFactory creates new buyer unit of work instances.
	BuyerUoWFactory interface {
		Create() BuyerUoW
	}

	// UoW manages transactions that read buyers and write orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   b, err := uow.BuyerRepository().Get(ctx, buyerID)
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		BuyerRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Outcome labels reported to Metrics.
const (
	OutcomeCommitted = "committed"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
	OutcomeGenerated = "generated"
)

// Metrics receives outcome counts for checkouts and receipts.
type Metrics interface {
	ObserveCheckout(outcome string)
	ObserveReceipt(outcome string)
}
