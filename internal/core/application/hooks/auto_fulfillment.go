package hooks

import (
	"context"
	"time"

	"shop/internal/core/domain/events"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/shipment"
	"shop/internal/core/domain/model/status"
	"shop/internal/core/ports"
)

// ShipmentStatusChanger is the guarded path every shipment status change goes through.
type ShipmentStatusChanger interface {
	ChangeShipmentStatus(ctx context.Context, repos ports.Repositories, orderID kernel.UUID, code string) (*order.Order, error)
}

// AutoFulfillmentHook delivers orders flagged noShippingRequired right after creation:
// it stores a zero-item shipment and moves the shipment status to delivered
// through the status changer, so the rule table still decides the composite status.
type AutoFulfillmentHook struct {
	changer ShipmentStatusChanger
	now     func() time.Time
}

func NewAutoFulfillmentHook(changer ShipmentStatusChanger) *AutoFulfillmentHook {
	return &AutoFulfillmentHook{changer: changer, now: time.Now}
}

// Register subscribes the hook to OrderCreated.
func (h *AutoFulfillmentHook) Register(bus *Bus) {
	Subscribe(bus, "auto_fulfillment", h.Handle)
}

func (h *AutoFulfillmentHook) Handle(ctx context.Context, repos ports.Repositories, event events.OrderCreated) error {
	o := event.Order()
	if !o.NoShippingRequired() {
		return nil
	}

	s, err := shipment.NewVirtualShipment(kernel.NewUUID(), o.ID(), h.now())
	if err != nil {
		return err
	}
	if err = repos.ShipmentRepository().Add(ctx, s); err != nil {
		return err
	}

	_, err = h.changer.ChangeShipmentStatus(ctx, repos, o.ID(), status.ShipmentDelivered)
	return err
}
