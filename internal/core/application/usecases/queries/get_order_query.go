package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its statuses and shipments.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db, registry)
//
//	o, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", o.ID, o.Status.Name)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the read model of one order.
type GetOrderQueryResponse struct {
	ID                 kernel.UUID
	PaymentStatus      StatusView
	ShipmentStatus     StatusView
	Status             StatusView
	Terminal           bool
	NoShippingRequired bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Shipments          []ShipmentResponse
}

// ShipmentResponse is a shipment with its carrier display name and tracking link.
// Virtual shipments have no carrier.
type ShipmentResponse struct {
	ID             kernel.UUID
	Carrier        string
	CarrierName    string
	TrackingNumber string
	TrackingLink   string
	ItemCount      int
	CreatedAt      time.Time
}
