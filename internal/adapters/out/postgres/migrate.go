package postgres

import (
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/outboxrepo"
	"shop/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the orders, shipments and notification_outbox tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &shipmentrepo.ShipmentDTO{}, &outboxrepo.MessageDTO{})
}
