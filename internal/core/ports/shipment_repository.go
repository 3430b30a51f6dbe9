package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipments.
type ShipmentRepository interface {
	// Add inserts a shipment. Shipments are never updated.
	Add(ctx context.Context, s *shipment.Shipment) error

	// ListByOrder returns the shipments of an order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*shipment.Shipment, error)
}
