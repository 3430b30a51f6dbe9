// Package outboxrepo persists notification messages written in the same
// transaction as the status change that produced them.
package outboxrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type MessageDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Topic     string     `gorm:"type:varchar(128);not null"`
	Key       string     `gorm:"type:varchar(128)"`
	Payload   []byte     `gorm:"type:jsonb;not null"`
	CreatedAt time.Time  `gorm:"not null;index"`
	SentAt    *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "notification_outbox"
}

func fromDomain(m *notification.Message) MessageDTO {
	return MessageDTO{
		ID:        m.ID().Bytes(),
		Topic:     m.Topic(),
		Key:       m.Key(),
		Payload:   m.Payload(),
		CreatedAt: m.CreatedAt(),
		SentAt:    m.SentAt(),
	}
}

func toDomain(dto MessageDTO) (*notification.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreMessage(id, dto.Topic, dto.Key, dto.Payload, dto.CreatedAt, dto.SentAt)
}
