package commands

import (
	"context"
	"time"

	"shop/internal/core/ports"
)

// RelayNotificationsCommandHandler moves pending outbox messages to the
// notification publisher. Messages are locked while being relayed and marked
// sent in the same transaction; a publish failure leaves them pending for the
// next run, so delivery is at least once.
type RelayNotificationsCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	now        func() time.Time
}

func NewRelayNotificationsCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
) RelayNotificationsCommandHandler {
	return RelayNotificationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle returns the number of messages delivered.
func (h *RelayNotificationsCommandHandler) Handle(ctx context.Context, cmd RelayNotificationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return inUnitOfWork(ctx, h.uowFactory, func(repos ports.Repositories) (int, error) {
		outbox := repos.OutboxRepository()

		pending, err := outbox.FetchPending(ctx, cmd.BatchSize())
		if err != nil {
			return 0, err
		}
		if len(pending) == 0 {
			return 0, nil
		}

		if err = h.publisher.Publish(ctx, pending...); err != nil {
			return 0, err
		}

		sentAt := h.now()
		for _, m := range pending {
			m.MarkSent(sentAt)
			if err = outbox.MarkSent(ctx, m); err != nil {
				return 0, err
			}
		}

		return len(pending), nil
	})
}
