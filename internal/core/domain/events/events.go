// Package events defines the typed lifecycle events published by the status
// changer. Every event carries the refreshed order; the previous composite status
// is not part of the payload.
package events

import (
	"shop/internal/core/domain/model/order"
)

// Event is implemented by every lifecycle event.
type Event interface {
	// Name is the stable event name, also used as the notification topic.
	Name() string
	Order() *order.Order
}

const (
	OrderCreatedName          = "order.created"
	PaymentStatusChangedName  = "order.payment_status_changed"
	ShipmentStatusChangedName = "order.shipment_status_changed"
	OrderCanceledName         = "order.canceled"
)

// OrderCreated is published after a new order has been stored.
type OrderCreated struct {
	order *order.Order
}

func NewOrderCreated(o *order.Order) OrderCreated {
	return OrderCreated{order: o}
}

func (e OrderCreated) Name() string { return OrderCreatedName }
func (e OrderCreated) Order() *order.Order { return e.order }

// PaymentStatusChanged is published after a payment status change has been stored.
type PaymentStatusChanged struct {
	order *order.Order
}

func NewPaymentStatusChanged(o *order.Order) PaymentStatusChanged {
	return PaymentStatusChanged{order: o}
}

func (e PaymentStatusChanged) Name() string { return PaymentStatusChangedName }
func (e PaymentStatusChanged) Order() *order.Order { return e.order }

// ShipmentStatusChanged is published after a shipment status change has been stored.
type ShipmentStatusChanged struct {
	order *order.Order
}

func NewShipmentStatusChanged(o *order.Order) ShipmentStatusChanged {
	return ShipmentStatusChanged{order: o}
}

func (e ShipmentStatusChanged) Name() string { return ShipmentStatusChangedName }
func (e ShipmentStatusChanged) Order() *order.Order { return e.order }

// OrderCanceled is published after both signals moved to canceled.
type OrderCanceled struct {
	order *order.Order
}

func NewOrderCanceled(o *order.Order) OrderCanceled {
	return OrderCanceled{order: o}
}

func (e OrderCanceled) Name() string { return OrderCanceledName }
func (e OrderCanceled) Order() *order.Order { return e.order }
