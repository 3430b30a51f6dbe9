package ports

import (
	"context"

	"shop/internal/core/domain/model/notification"
)

// OutboxRepository stores notifications written inside status change transactions.
type OutboxRepository interface {
	// Enqueue inserts a pending message. A failed insert must not abort the
	// surrounding transaction.
	Enqueue(ctx context.Context, m *notification.Message) error

	// FetchPending returns up to limit unsent messages, oldest first, locked so
	// that concurrent relays skip them.
	FetchPending(ctx context.Context, limit int) ([]*notification.Message, error)

	// MarkSent stores the delivery timestamp of m.
	MarkSent(ctx context.Context, m *notification.Message) error
}

// NotificationPublisher delivers outbox messages to downstream consumers.
type NotificationPublisher interface {
	Publish(ctx context.Context, messages ...*notification.Message) error
	Close() error
}
