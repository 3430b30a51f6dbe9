package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO stores status codes as plain strings so vocabularies can grow
// through configuration without migrations.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaymentStatus      string    `gorm:"type:varchar(64);not null"`
	ShipmentStatus     string    `gorm:"type:varchar(64);not null"`
	Status             string    `gorm:"type:varchar(64);not null;index"`
	NoShippingRequired bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                 o.ID().Bytes(),
		PaymentStatus:      o.PaymentStatus(),
		ShipmentStatus:     o.ShipmentStatus(),
		Status:             o.Status(),
		NoShippingRequired: o.NoShippingRequired(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.PaymentStatus, dto.ShipmentStatus, dto.Status, dto.NoShippingRequired)
}
