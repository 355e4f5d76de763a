package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one database transaction across the order and buyer
// repositories. Repositories obtained before Begin, or after Commit and
// Rollback, run outside any transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback fails when no transaction is open. Callers defer it right
	// after Begin and ignore the error once Commit has succeeded.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	BuyerRepository() BuyerRepository
}
