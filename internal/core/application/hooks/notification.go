package hooks

import (
	"context"
	"time"

	"shop/internal/core/domain/events"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/ports"
)

// OrderNotification is the JSON payload of every outbox message.
type OrderNotification struct {
	Event              string    `json:"event"`
	OrderID            string    `json:"orderId"`
	PaymentStatus      string    `json:"paymentStatus"`
	ShipmentStatus     string    `json:"shipmentStatus"`
	Status             string    `json:"status"`
	NoShippingRequired bool      `json:"noShippingRequired"`
	OccurredAt         time.Time `json:"occurredAt"`
}

// NotificationHook enqueues an outbox message for every lifecycle event. The
// relay job delivers it after commit, so the change never waits on the broker.
type NotificationHook struct {
	now func() time.Time
}

func NewNotificationHook() *NotificationHook {
	return &NotificationHook{now: time.Now}
}

// Register subscribes the hook to every lifecycle event as a notification handler.
func (h *NotificationHook) Register(bus *Bus) {
	SubscribeNotification(bus, "notification", enqueue[events.OrderCreated](h))
	SubscribeNotification(bus, "notification", enqueue[events.PaymentStatusChanged](h))
	SubscribeNotification(bus, "notification", enqueue[events.ShipmentStatusChanged](h))
	SubscribeNotification(bus, "notification", enqueue[events.OrderCanceled](h))
}

func enqueue[E events.Event](h *NotificationHook) Handler[E] {
	return func(ctx context.Context, repos ports.Repositories, event E) error {
		return h.Enqueue(ctx, repos, event)
	}
}

// Enqueue writes the outbox message for event. The topic is the event name and
// the key is the order id, so one order's messages stay ordered on a partition.
func (h *NotificationHook) Enqueue(ctx context.Context, repos ports.Repositories, event events.Event) error {
	o := event.Order()
	now := h.now().UTC()

	m, err := notification.NewMessage(kernel.NewUUID(), event.Name(), o.ID().String(), OrderNotification{
		Event:              event.Name(),
		OrderID:            o.ID().String(),
		PaymentStatus:      o.PaymentStatus(),
		ShipmentStatus:     o.ShipmentStatus(),
		Status:             o.Status(),
		NoShippingRequired: o.NoShippingRequired(),
		OccurredAt:         now,
	}, now)
	if err != nil {
		return err
	}

	return repos.OutboxRepository().Enqueue(ctx, m)
}
