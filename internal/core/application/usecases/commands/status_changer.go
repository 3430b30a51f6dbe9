package commands

import (
	"context"
	"fmt"
	"time"

	"shop/internal/core/domain/events"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/shipment"
	"shop/internal/core/domain/model/status"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/metrics"
)

const (
	OperationCreateOrder          = "create_order"
	OperationChangePaymentStatus  = "change_payment_status"
	OperationChangeShipmentStatus = "change_shipment_status"
	OperationCancelOrder          = "cancel_order"
	OperationCreateShipment       = "create_shipment"
)

// StatusRegistry is what the changer needs from status.Registry.
type StatusRegistry interface {
	order.StatusPolicy
	Carrier(code string) (shipment.Carrier, bool)
}

// EventPublisher runs the hooks subscribed to an event inside the caller's unit of work.
type EventPublisher interface {
	Publish(ctx context.Context, repos ports.Repositories, event events.Event) error
}

// StatusChanger is the only writer of order status fields. Every operation reads
// the order under a row lock, applies the guard, resolves the composite status,
// stores it and publishes the matching event with the same repositories. The
// caller owns the transaction.
type StatusChanger struct {
	registry  StatusRegistry
	publisher EventPublisher
	metrics   metrics.BusinessMetrics
	now       func() time.Time
}

func NewStatusChanger(registry StatusRegistry, publisher EventPublisher, bm metrics.BusinessMetrics) *StatusChanger {
	return &StatusChanger{
		registry:  registry,
		publisher: publisher,
		metrics:   bm,
		now:       time.Now,
	}
}

// CreateOrder stores a new order in the default statuses and publishes OrderCreated.
func (c *StatusChanger) CreateOrder(
	ctx context.Context,
	repos ports.Repositories,
	orderID kernel.UUID,
	noShippingRequired bool,
) (*order.Order, error) {
	return c.observe(ctx, OperationCreateOrder, func() (*order.Order, error) {
		o, err := order.NewOrder(orderID, noShippingRequired, c.registry)
		if err != nil {
			return nil, err
		}
		if err = repos.OrderRepository().Add(ctx, o); err != nil {
			return nil, err
		}
		return c.publish(ctx, repos, events.NewOrderCreated(o))
	})
}

// ChangePaymentStatus moves the payment status of orderID to code.
func (c *StatusChanger) ChangePaymentStatus(
	ctx context.Context,
	repos ports.Repositories,
	orderID kernel.UUID,
	code string,
) (*order.Order, error) {
	return c.observe(ctx, OperationChangePaymentStatus, func() (*order.Order, error) {
		o, err := repos.OrderRepository().GetForUpdate(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if err = o.ChangePaymentStatus(code, c.registry); err != nil {
			return nil, err
		}
		if err = repos.OrderRepository().Update(ctx, o); err != nil {
			return nil, err
		}
		return c.publish(ctx, repos, events.NewPaymentStatusChanged(o))
	})
}

// ChangeShipmentStatus moves the shipment status of orderID to code.
func (c *StatusChanger) ChangeShipmentStatus(
	ctx context.Context,
	repos ports.Repositories,
	orderID kernel.UUID,
	code string,
) (*order.Order, error) {
	return c.observe(ctx, OperationChangeShipmentStatus, func() (*order.Order, error) {
		o, err := repos.OrderRepository().GetForUpdate(ctx, orderID)
		if err != nil {
			return nil, err
		}
		return c.changeShipmentStatus(ctx, repos, o, code)
	})
}

// CancelOrder moves both signals to canceled when the order allows it.
func (c *StatusChanger) CancelOrder(ctx context.Context, repos ports.Repositories, orderID kernel.UUID) (*order.Order, error) {
	return c.observe(ctx, OperationCancelOrder, func() (*order.Order, error) {
		o, err := repos.OrderRepository().GetForUpdate(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if err = o.Cancel(c.registry); err != nil {
			return nil, err
		}
		if err = repos.OrderRepository().Update(ctx, o); err != nil {
			return nil, err
		}
		return c.publish(ctx, repos, events.NewOrderCanceled(o))
	})
}

// CreateShipment records a shipment handed to carrierCode and moves the shipment
// status to shipped. Orders already shipped or delivered are refused.
func (c *StatusChanger) CreateShipment(
	ctx context.Context,
	repos ports.Repositories,
	orderID kernel.UUID,
	carrierCode string,
	trackingNumber string,
	itemCount int,
) (*order.Order, error) {
	return c.observe(ctx, OperationCreateShipment, func() (*order.Order, error) {
		o, err := repos.OrderRepository().GetForUpdate(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if err = o.EnsureAwaitingShipment(c.registry); err != nil {
			return nil, err
		}
		if _, ok := c.registry.Carrier(carrierCode); !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("carrier", fmt.Errorf("unknown carrier %q", carrierCode))
		}

		s, err := shipment.NewShipment(kernel.NewUUID(), orderID, carrierCode, trackingNumber, itemCount, c.now())
		if err != nil {
			return nil, err
		}
		if err = repos.ShipmentRepository().Add(ctx, s); err != nil {
			return nil, err
		}

		return c.changeShipmentStatus(ctx, repos, o, status.ShipmentShipped)
	})
}

func (c *StatusChanger) changeShipmentStatus(
	ctx context.Context,
	repos ports.Repositories,
	o *order.Order,
	code string,
) (*order.Order, error) {
	if err := o.ChangeShipmentStatus(code, c.registry); err != nil {
		return nil, err
	}
	if err := repos.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}
	return c.publish(ctx, repos, events.NewShipmentStatusChanged(o))
}

// publish runs the hooks and reloads the order, since hooks may have changed it.
func (c *StatusChanger) publish(ctx context.Context, repos ports.Repositories, event events.Event) (*order.Order, error) {
	if err := c.publisher.Publish(ctx, repos, event); err != nil {
		return nil, err
	}
	return repos.OrderRepository().Get(ctx, event.Order().ID())
}

func (c *StatusChanger) observe(ctx context.Context, operation string, fn func() (*order.Order, error)) (*order.Order, error) {
	start := time.Now()

	o, err := fn()

	outcome := metrics.StatusSuccess
	if err != nil {
		outcome = metrics.StatusError
	}
	c.metrics.RecordOperation(ctx, operation, outcome)
	c.metrics.RecordDuration(ctx, operation, time.Since(start), outcome)
	if err == nil {
		c.metrics.RecordResolution(ctx, operation, o.Status())
	}

	return o, err
}
