// Package commands contains the operations that change order state. Every
// command handler opens one unit of work, delegates to the StatusChanger and
// commits; any error rolls the whole change back, hook writes included.
package commands

import (
	"context"

	"shop/internal/core/ports"
)

// UoW is a transaction plus the repositories bound to it.
//
// Example:
//
//	uow := factory.Create()
//	err := uow.Begin(ctx)
//	defer uow.Rollback(ctx)
//
//	o, err := changer.ChangePaymentStatus(ctx, uow, orderID, "paid")
//	// ...
//
//	err = uow.Commit(ctx)
type UoW = ports.UnitOfWork

// UoWFactory creates a new unit of work per command.
type UoWFactory = ports.UnitOfWorkFactory

// inUnitOfWork runs fn inside a fresh unit of work and commits when it succeeds.
// Rollback after a successful commit is a no-op.
func inUnitOfWork[T any](ctx context.Context, factory UoWFactory, fn func(repos ports.Repositories) (T, error)) (T, error) {
	var zero T

	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	result, err := fn(uow)
	if err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return result, nil
}
