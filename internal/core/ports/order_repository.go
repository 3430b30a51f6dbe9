// Package ports defines the contracts between the order status engine and its
// infrastructure: repositories bound to a unit of work and the notification
// publisher used by the outbox relay.
package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Status codes are stored as plain strings.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the three status codes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier without locking it.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and holds its row lock until the surrounding
	// transaction ends. Concurrent status changes of the same order are serialized here.
	//
	// Example:
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   if err != nil {
	//       return nil, err
	//   }
	//   if err := o.ChangeShipmentStatus("shipped", registry); err != nil {
	//       return nil, err
	//   }
	//   err = uow.OrderRepository().Update(ctx, o)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
