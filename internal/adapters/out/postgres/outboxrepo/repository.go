package outboxrepo

import (
	"context"

	"shop/internal/core/domain/model/notification"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Enqueue inserts m inside a nested transaction. Within an open unit of work
// gorm turns it into a savepoint, so a failed insert is rolled back on its own
// and the surrounding transaction stays usable.
func (r *GormOutboxRepository) Enqueue(ctx context.Context, m *notification.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := fromDomain(m)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
}

// FetchPending locks up to limit unsent messages, oldest first. Rows locked by a
// concurrent relay are skipped.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]*notification.Message, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*notification.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, nil
}

func (r *GormOutboxRepository) MarkSent(ctx context.Context, m *notification.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !m.IsSent() {
		return errs.NewValueIsInvalidError("sentAt")
	}

	result := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", m.ID().Bytes()).
		Update("sent_at", m.SentAt())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", m.ID().String())
	}

	return nil
}
