package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command so concurrent
// commands never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// Repositories gives access to repositories bound to one transaction.
// Hooks receive it so their writes join the status change they react to.
type Repositories interface {
	OrderRepository() OrderRepository
	ShipmentRepository() ShipmentRepository
	OutboxRepository() OutboxRepository
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	Repositories
}
