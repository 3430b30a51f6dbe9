// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// Shipments reference their order by id; a zero-item row with no carrier is the
// virtual shipment written when an order needs no physical delivery.
package shipmentrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipments.
type ShipmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Carrier        string    `gorm:"type:varchar(64)"`
	TrackingNumber string    `gorm:"type:varchar(255)"`
	ItemCount      int       `gorm:"type:int;not null"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName overrides GORM's default "shipment_dtos".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:             s.ID().Bytes(),
		OrderID:        s.OrderID().Bytes(),
		Carrier:        s.Carrier(),
		TrackingNumber: s.TrackingNumber(),
		ItemCount:      s.ItemCount(),
		CreatedAt:      s.CreatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, orderID, dto.Carrier, dto.TrackingNumber, dto.ItemCount, dto.CreatedAt)
}
